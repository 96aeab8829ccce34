package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/oakmund/finsight/internal/assistant"
	"github.com/oakmund/finsight/internal/config"
	"github.com/oakmund/finsight/internal/fin"
	"github.com/oakmund/finsight/internal/llm"
	"github.com/oakmund/finsight/internal/llm/factory"
	"github.com/oakmund/finsight/internal/metrics"
	"github.com/oakmund/finsight/internal/storage/transcript"
	"github.com/oakmund/finsight/internal/tools"
)

// loadConfig reads the config file or falls back to defaults.
func loadConfig(log *zap.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Debug("no config file specified, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// buildAssistant wires the provider, tool registry and assistant from config.
// A missing credential yields a nil provider: the assistant then answers every
// query with the configuration-error message instead of crashing.
func buildAssistant(cfg *config.Config, m *metrics.Registry, log *zap.Logger) *assistant.Assistant {
	var provider llm.Provider
	if cfg.HasCredential() {
		p, err := factory.New(cfg.LLM)
		if err != nil {
			log.Warn("LLM provider unavailable", zap.Error(err))
		} else {
			provider = p
		}
	}

	registry := tools.NewFinancialRegistry(fin.New())

	opts := []assistant.Option{
		assistant.WithLogger(log),
		assistant.WithConfig(assistant.Config{
			MaxTokens:    cfg.Assistant.MaxTokens,
			Temperature:  cfg.Assistant.Temperature,
			ToolRounds:   cfg.Assistant.ToolRounds,
			HistoryLimit: cfg.Assistant.HistoryLimit,
		}),
	}
	if m != nil {
		opts = append(opts, assistant.WithMetrics(m))
	}

	return assistant.New(provider, registry, opts...)
}

// buildArchive creates the transcript store, or nil when archiving is off.
func buildArchive(cfg *config.Config) (transcript.Store, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}
	switch cfg.Archive.Type {
	case "s3":
		return transcript.NewS3Store(transcript.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		return transcript.NewLocalStore(cfg.Archive.Path)
	}
}
