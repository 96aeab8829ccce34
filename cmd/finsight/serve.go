package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakmund/finsight/internal/api"
	"github.com/oakmund/finsight/internal/logger"
	"github.com/oakmund/finsight/internal/metrics"
	"github.com/oakmund/finsight/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the FINSIGHT HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	var reg *metrics.Registry
	metricsPath := ""
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		metricsPath = cfg.Metrics.Path
	}

	asst := buildAssistant(cfg, reg, log)
	sessions := session.NewMemoryStore()

	log.Info("starting FINSIGHT server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("provider", cfg.LLM.Provider),
	)

	server := api.NewServer(api.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		MetricsPath: metricsPath,
	}, asst, sessions, reg, log)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down FINSIGHT server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
