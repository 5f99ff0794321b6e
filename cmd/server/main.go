package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"medisync/internal/cli"
	"medisync/internal/config"
	"medisync/internal/logging"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	if err := logging.InitLogger(cfg.LogConfig()); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Serve(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
