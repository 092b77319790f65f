package mcpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/micutio/skyquery/internal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool parameters. The protocol flattens every parameter to a string, even
// the semantically numeric ones; parsing happens in the query service.

type HexParams struct {
	HexID string `json:"hex_id"`
}

type CallsignParams struct {
	Callsign string `json:"callsign"`
}

type RegistrationParams struct {
	Reg string `json:"reg"`
}

type TypeParams struct {
	IcaoType string `json:"icao_type"`
}

type SquawkParams struct {
	SquawkCode string `json:"squawk_code"`
}

type PositionParams struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Radius    string `json:"radius,omitempty"`
}

type NoParams struct{}

func (a *App) registerTools() {
	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_by_hex",
		Description: "Search for aircraft by Mode S hex ID (comma-separated for multiple)",
	}, a.handleByHex)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_by_callsign",
		Description: "Search for aircraft by callsign (comma-separated for multiple)",
	}, a.handleByCallsign)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_by_registration",
		Description: "Search for aircraft by registration/tail number (comma-separated for multiple)",
	}, a.handleByRegistration)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_by_type",
		Description: "Search for aircraft by ICAO type code (e.g., A321, B738, C172)",
	}, a.handleByType)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_by_squawk",
		Description: "Search for aircraft by squawk code",
	}, a.handleBySquawk)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "aircraft_near_position",
		Description: "Search for aircraft within radius of a position in nautical miles (max 250 nm)",
	}, a.handleNearPosition)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "military_aircraft",
		Description: "Retrieve all aircraft tagged as military",
	}, a.handleMilitary)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "ladd_aircraft",
		Description: "Retrieve all aircraft tagged as LADD (Law Enforcement/Security)",
	}, a.handleLADD)

	mcp.AddTool(a.server, &mcp.Tool{
		Name:        "pia_aircraft",
		Description: "Retrieve all aircraft flying under a privacy ICAO address (PIA)",
	}, a.handlePIA)

	a.logger.Info("registered aircraft query tools", slog.Int("count", 9))
}

func (a *App) handleByHex(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[HexParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.ByHex(ctx, params.Arguments.HexID)

	return a.toolResult("aircraft_by_hex", text, err)
}

func (a *App) handleByCallsign(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[CallsignParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.ByCallsign(ctx, params.Arguments.Callsign)

	return a.toolResult("aircraft_by_callsign", text, err)
}

func (a *App) handleByRegistration(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[RegistrationParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.ByRegistration(ctx, params.Arguments.Reg)

	return a.toolResult("aircraft_by_registration", text, err)
}

func (a *App) handleByType(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[TypeParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.ByType(ctx, params.Arguments.IcaoType)

	return a.toolResult("aircraft_by_type", text, err)
}

func (a *App) handleBySquawk(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[SquawkParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.BySquawk(ctx, params.Arguments.SquawkCode)

	return a.toolResult("aircraft_by_squawk", text, err)
}

func (a *App) handleNearPosition(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[PositionParams]) (*mcp.CallToolResultFor[struct{}], error) {
	args := params.Arguments
	text, err := a.service.NearPosition(ctx, args.Latitude, args.Longitude, args.Radius)

	return a.toolResult("aircraft_near_position", text, err)
}

func (a *App) handleMilitary(ctx context.Context, _ *mcp.ServerSession, _ *mcp.CallToolParamsFor[NoParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.Military(ctx)

	return a.toolResult("military_aircraft", text, err)
}

func (a *App) handleLADD(ctx context.Context, _ *mcp.ServerSession, _ *mcp.CallToolParamsFor[NoParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.LADD(ctx)

	return a.toolResult("ladd_aircraft", text, err)
}

func (a *App) handlePIA(ctx context.Context, _ *mcp.ServerSession, _ *mcp.CallToolParamsFor[NoParams]) (*mcp.CallToolResultFor[struct{}], error) {
	text, err := a.service.PIA(ctx)

	return a.toolResult("pia_aircraft", text, err)
}

// toolResult converts a service response into a tool result. Failures become
// user-facing error results on the tool channel, never protocol faults, so
// one bad invocation cannot affect the next.
func (a *App) toolResult(tool, text string, err error) (*mcp.CallToolResultFor[struct{}], error) {
	if err != nil {
		a.logger.Error("tool invocation failed",
			slog.String("tool", tool),
			slog.Any("error", err),
		)

		return &mcp.CallToolResultFor[struct{}]{
			Content: []mcp.Content{&mcp.TextContent{Text: userMessage(err)}},
			IsError: true,
		}, nil
	}

	return &mcp.CallToolResultFor[struct{}]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

// userMessage renders a service failure as a single text message whose
// prefix tells the consumer which category of failure occurred.
func userMessage(err error) string {
	var upstream *internal.UpstreamError

	switch {
	case errors.Is(err, internal.ErrValidation):
		detail := strings.TrimPrefix(err.Error(), internal.ErrValidation.Error()+": ")

		return "Invalid input: " + detail
	case errors.As(err, &upstream):
		return fmt.Sprintf("Upstream service error: the aircraft API returned %s", upstream.Status)
	case errors.Is(err, internal.ErrTransport):
		return fmt.Sprintf("Network error: %v", err)
	case errors.Is(err, internal.ErrDecode):
		return fmt.Sprintf("Bad upstream response: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
