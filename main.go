// Package main provides the skyquery aircraft tracking server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/micutio/skyquery/httpapp"
	"github.com/micutio/skyquery/internal"
	"github.com/micutio/skyquery/mcpapp"
	"github.com/spf13/pflag"
)

func main() {
	var argUseHTTP bool
	var argConfigFile string

	setupCommandLineFlags(&argUseHTTP, &argConfigFile)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	cfg, cfgErr := internal.LoadConfig(argConfigFile)
	if cfgErr != nil {
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("invalid configuration, exiting", slog.Any("error", cfgErr))
		os.Exit(1)
	}

	logger := internal.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	if argUseHTTP {
		if err := httpapp.Run(cfg, logger); err != nil {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}

		return
	}

	app := mcpapp.New(cfg, logger)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupCommandLineFlags(argUseHTTP *bool, argConfigFile *string) {
	// Whether to serve over HTTP instead of the default stdio transport.
	pflag.BoolVarP(
		argUseHTTP,
		"http",
		"w",
		false,
		"serve MCP over HTTP instead of stdio")
	pflag.Lookup("http").NoOptDefVal = "true"

	// Explicit config file path, overriding the default search paths.
	pflag.StringVarP(
		argConfigFile,
		"config",
		"c",
		"",
		"path to the configuration file")
}
