package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/oakmund/finsight/internal/core"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LLMConfig struct {
	Provider string       `mapstructure:"provider"`
	Claude   ClaudeConfig `mapstructure:"claude"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
	Ollama   OllamaConfig `mapstructure:"ollama"`
}

type ClaudeConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type OllamaConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
}

// AssistantConfig holds the orchestration settings.
type AssistantConfig struct {
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
	ToolRounds   int     `mapstructure:"tool_rounds"`
	HistoryLimit int     `mapstructure:"history_limit"`
}

// ArchiveConfig holds transcript archive settings.
type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Type    string   `mapstructure:"type"` // "localfs" or "s3"
	Path    string   `mapstructure:"path"` // For localfs
	S3      S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults. The OpenAI provider picks
// up OPENAI_API_KEY and OPENAI_BASE_URL so an OpenRouter key in the
// environment works with no config file at all.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		LLM: LLMConfig{
			Provider: "openai",
			OpenAI: OpenAIConfig{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				BaseURL: os.Getenv("OPENAI_BASE_URL"),
				Model:   os.Getenv("OPENAI_MODEL"),
			},
		},
		Assistant: AssistantConfig{
			MaxTokens:    2000,
			Temperature:  0.3,
			ToolRounds:   4,
			HistoryLimit: 40,
		},
		Archive: ArchiveConfig{
			Enabled: false,
			Type:    "localfs",
			Path:    "transcripts",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Assistant.MaxTokens < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("max_tokens cannot be negative, got %d", c.Assistant.MaxTokens))
	}
	if c.Assistant.ToolRounds < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("tool_rounds cannot be negative, got %d", c.Assistant.ToolRounds))
	}

	switch c.Archive.Type {
	case "", "localfs", "s3":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("archive type must be localfs or s3, got %q", c.Archive.Type))
	}
	if c.Archive.Enabled && c.Archive.Type == "s3" && c.Archive.S3.Bucket == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("s3 bucket required when archive type is s3"))
	}

	// Credential presence is checked again at call time by the assistant; an
	// unset key here is not fatal so read-only commands still work.
	switch c.LLM.Provider {
	case "", "claude", "openai", "ollama":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("llm provider must be claude, openai or ollama, got %q", c.LLM.Provider))
	}

	return nil
}

// HasCredential reports whether the configured provider has what it needs to
// authenticate.
func (c *Config) HasCredential() bool {
	switch c.LLM.Provider {
	case "claude":
		return c.LLM.Claude.APIKey != ""
	case "openai":
		return c.LLM.OpenAI.APIKey != ""
	case "ollama":
		return true // local endpoint, no credential
	default:
		return false
	}
}
