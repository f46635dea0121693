package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xxxsen/common/logger"
)

const (
	defaultPort               = 8080
	defaultAIProvider         = "gemini"
	defaultAIModel            = "gemini-2.0-flash"
	defaultAPIKeyEnv          = "GOOGLE_API_KEY"
	defaultVideoBaseURL       = "https://www.youtube.com"
	defaultMaxTranscriptChars = 3000
	defaultVideoTimeout       = 15
)

type Config struct {
	Port             int              `json:"port"`
	LogConfig        logger.LogConfig `json:"log_config"`
	MaxUploadSize    int64            `json:"max_upload_size"`
	RateLimitSeconds int              `json:"rate_limit_seconds"`
	CORSAllowlist    []string         `json:"cors_allowlist"`
	AI               AIConfig         `json:"ai"`
	Video            VideoConfig      `json:"video"`
}

type AIConfig struct {
	Provider  string                 `json:"provider"`
	Model     string                 `json:"model"`
	Timeout   int                    `json:"timeout"`
	APIKeyEnv string                 `json:"api_key_env"`
	Data      map[string]interface{} `json:"data"`
}

type VideoConfig struct {
	BaseURL            string   `json:"base_url"`
	Languages          []string `json:"languages"`
	MaxTranscriptChars int      `json:"max_transcript_chars"`
	Timeout            int      `json:"timeout"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) error {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.MaxUploadSize < 0 {
		return fmt.Errorf("max_upload_size must not be negative")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.LogConfig.File == "" {
		cfg.LogConfig.Console = true
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = defaultAIProvider
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
	if cfg.AI.Timeout < 0 {
		return fmt.Errorf("ai.timeout must not be negative")
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = defaultAPIKeyEnv
	}
	if cfg.AI.Data == nil {
		cfg.AI.Data = map[string]interface{}{}
	}
	if key, _ := cfg.AI.Data["api_key"].(string); strings.TrimSpace(key) == "" {
		cfg.AI.Data["api_key"] = os.Getenv(cfg.AI.APIKeyEnv)
	}
	if cfg.Video.BaseURL == "" {
		cfg.Video.BaseURL = defaultVideoBaseURL
	}
	if len(cfg.Video.Languages) == 0 {
		cfg.Video.Languages = []string{"en"}
	}
	if cfg.Video.MaxTranscriptChars == 0 {
		cfg.Video.MaxTranscriptChars = defaultMaxTranscriptChars
	}
	if cfg.Video.MaxTranscriptChars < 0 {
		return fmt.Errorf("video.max_transcript_chars must not be negative")
	}
	if cfg.Video.Timeout == 0 {
		cfg.Video.Timeout = defaultVideoTimeout
	}
	return nil
}
