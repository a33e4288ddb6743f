package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/madil51/chunk-client/internal/buildinfo"
	"github.com/madil51/chunk-client/internal/client/cli"
	"github.com/madil51/chunk-client/internal/client/config"
	"github.com/madil51/chunk-client/internal/logging"
)

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
