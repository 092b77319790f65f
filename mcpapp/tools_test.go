package mcpapp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/micutio/skyquery/internal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *App {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &internal.Config{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(cfg, logger)
}

func stubAircraft(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func resultText(t *testing.T, result *mcp.CallToolResultFor[struct{}]) string {
	t.Helper()

	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "tool results must carry text content")

	return text.Text
}

func TestNewRegistersServer(t *testing.T) {
	app := newTestApp(t, stubAircraft(`{"ac":[],"msg":"No error"}`))

	assert.NotNil(t, app.Server())
	assert.NotNil(t, app.service)
}

func TestHandleByCallsign(t *testing.T) {
	app := newTestApp(t, stubAircraft(
		`{"ac":[{"flight":"BA387   ","r":"G-EUPA","lat":51.4769,"lon":-0.4589,"alt_baro":35000}],"msg":"No error","total":1}`,
	))

	params := &mcp.CallToolParamsFor[CallsignParams]{
		Arguments: CallsignParams{Callsign: "BA387"},
	}

	result, err := app.handleByCallsign(context.Background(), nil, params)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "Callsign: BA387")
	assert.Contains(t, text, "Registration: G-EUPA")
}

func TestHandleByHexValidationError(t *testing.T) {
	var hits int

	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		stubAircraft(`{"ac":[],"msg":"No error"}`)(w, r)
	})

	params := &mcp.CallToolParamsFor[HexParams]{
		Arguments: HexParams{HexID: "   "},
	}

	result, err := app.handleByHex(context.Background(), nil, params)
	require.NoError(t, err, "tool failures must not become protocol faults")
	assert.True(t, result.IsError)
	assert.Equal(t, "Invalid input: hex ID is required", resultText(t, result))
	assert.Zero(t, hits)
}

func TestHandleNearPositionRejectsOutOfRange(t *testing.T) {
	app := newTestApp(t, stubAircraft(`{"ac":[],"msg":"No error"}`))

	params := &mcp.CallToolParamsFor[PositionParams]{
		Arguments: PositionParams{Latitude: "91", Longitude: "0", Radius: "50"},
	}

	result, err := app.handleNearPosition(context.Background(), nil, params)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Invalid input: latitude must be between -90 and 90", resultText(t, result))
}

func TestHandleMilitaryUpstreamFailure(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	params := &mcp.CallToolParamsFor[NoParams]{}

	result, err := app.handleMilitary(context.Background(), nil, params)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(resultText(t, result), "Upstream service error:"))
}

func TestHandleLADDNoResults(t *testing.T) {
	app := newTestApp(t, stubAircraft(`{"ac":[],"msg":"No error","total":0}`))

	params := &mcp.CallToolParamsFor[NoParams]{}

	result, err := app.handleLADD(context.Background(), nil, params)
	require.NoError(t, err)

	// An empty result set is a valid response, not an error.
	assert.False(t, result.IsError)
	assert.Equal(t, "No aircraft found", resultText(t, result))
}

func TestUserMessageCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("%w: callsign is required", internal.ErrValidation),
			expected: "Invalid input: callsign is required",
		},
		{
			name:     "upstream",
			err:      &internal.UpstreamError{StatusCode: 503, Status: "503 Service Unavailable"},
			expected: "Upstream service error: the aircraft API returned 503 Service Unavailable",
		},
		{
			name:     "transport",
			err:      fmt.Errorf("fetch: %w: connection refused", internal.ErrTransport),
			expected: "Network error: fetch: request failed: connection refused",
		},
		{
			name:     "decode",
			err:      fmt.Errorf("fetch: %w: empty response body", internal.ErrDecode),
			expected: "Bad upstream response: fetch: malformed response: empty response body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userMessage(tt.err))
		})
	}
}
