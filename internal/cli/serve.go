package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"medisync/internal/config"
	"medisync/internal/logging"
	"medisync/internal/server"
	"medisync/internal/service"
	"medisync/internal/telemetry"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}

			if err := logging.InitLogger(cfg.LogConfig()); err != nil {
				return err
			}
			logger := logging.GetGlobalLogger()
			defer logger.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().String("port", "", "Port to listen on (overrides API_PORT)")
	return cmd
}

// Serve wires telemetry, the submission gateway and the HTTP server, and
// blocks until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	logger.Info("Starting server in %s mode with %s gateway", cfg.Environment, cfg.Gateway)

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	gateway, closeGateway, err := service.NewGateway(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize gateway: %w", err)
	}
	defer closeGateway()

	srv, err := server.NewServer(cfg, logger, gateway, gateway)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
