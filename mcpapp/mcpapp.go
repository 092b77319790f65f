// Package mcpapp exposes the aircraft query service as a set of MCP tools
// and runs the server over the stdio transport. The HTTP deployment front
// lives in the httpapp package and reuses the server built here.
package mcpapp

import (
	"context"
	"log/slog"

	"github.com/micutio/skyquery/internal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "skyquery"
	serverVersion = "1.0.0"
)

// App wires the MCP server to the aircraft query service.
type App struct {
	server  *mcp.Server
	service *internal.Service
	logger  *slog.Logger
}

// New builds the MCP server and registers all aircraft query tools on it.
func New(cfg *internal.Config, logger *slog.Logger) *App {
	client := internal.NewClient(cfg, logger)
	service := internal.NewService(client, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: "Real-time aircraft tracking and information via the airplanes.live API",
	})

	app := &App{
		server:  server,
		service: service,
		logger:  logger,
	}
	app.registerTools()

	return app
}

// Server returns the underlying MCP server, e.g. for mounting on an
// HTTP transport.
func (a *App) Server() *mcp.Server {
	return a.server
}

// Run serves MCP over stdin/stdout until the context is cancelled or the
// client disconnects.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting MCP server on stdio transport")

	return a.server.Run(ctx, mcp.NewStdioTransport())
}
