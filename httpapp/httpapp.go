// Package httpapp serves the MCP server over the streamable HTTP transport
// for deployments behind a reverse proxy, in contrast to the stdio mode
// used when a desktop client spawns the server directly.
package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/micutio/skyquery/internal"
	"github.com/micutio/skyquery/mcpapp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Run serves MCP over HTTP on the configured address until a shutdown
// signal arrives or the listener fails.
func Run(cfg *internal.Config, logger *slog.Logger) error {
	app := mcpapp.New(cfg, logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(app),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting MCP server on HTTP transport", slog.String("addr", cfg.HTTPAddr))
		errc <- server.ListenAndServe()
	}()

	// Use a channel to gracefully stop the server on SIGINT/SIGTERM.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpapp: listener failed: %w", err)
		}
	case <-sigc:
		logger.Info("shutdown signal received, stopping...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("httpapp: shutdown failed: %w", err)
		}
	}

	return nil
}

// NewHandler mounts the MCP endpoint and the health check on one mux.
func NewHandler(app *mcpapp.App) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return app.Server()
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.HandleFunc("/healthz", handleHealthz)

	return mux
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
