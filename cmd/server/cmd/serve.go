package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"portfolio-server/internal/config"
	"portfolio-server/internal/logging"
	"portfolio-server/internal/observability"
	"portfolio-server/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the contact intake server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Configure(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracing(context.Background(), cfg.OTLPEndpoint)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Error("failed to shut down tracing: %v", err)
			}
		}()
		logger.Info("tracing enabled, exporting to %s", cfg.OTLPEndpoint)
	}

	srv := server.NewServer(cfg)
	defer srv.Close()

	logger.Info("listening on :%s", cfg.Port)
	return srv.Start()
}
