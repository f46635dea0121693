package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/ai"
	"github.com/xxxsen/gistly/internal/ats"
	"github.com/xxxsen/gistly/internal/config"
	"github.com/xxxsen/gistly/internal/extract"
	"github.com/xxxsen/gistly/internal/service"
	"github.com/xxxsen/gistly/internal/youtube"
)

type app struct {
	cfg     *config.Config
	manager *ai.Manager
	scorer  *ats.Scorer
	resumes *service.ResumeService
	videos  *service.VideoService
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func initLogger(cfg *config.Config) {
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
}

// newManager treats a missing credential as "AI disabled" rather than a
// startup failure, so the model-free routes keep working.
func newManager(cfg *config.Config) (*ai.Manager, error) {
	managerCfg := ai.ManagerConfig{Timeout: cfg.AI.Timeout}
	provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		if errors.Is(err, ai.ErrMissingCredential) {
			logutil.GetLogger(context.Background()).Error("ai credential missing, ai features disabled",
				zap.String("provider", cfg.AI.Provider),
				zap.String("api_key_env", cfg.AI.APIKeyEnv),
			)
			return ai.NewManager(nil, managerCfg), nil
		}
		return nil, fmt.Errorf("init ai provider: %w", err)
	}
	return ai.NewManager(ai.NewGenerator(provider, cfg.AI.Model), managerCfg), nil
}

func newApp(cfg *config.Config) (*app, error) {
	manager, err := newManager(cfg)
	if err != nil {
		return nil, err
	}
	scorer := ats.NewDefaultScorer()
	fetcher := youtube.NewFetcher(youtube.FetcherConfig{
		BaseURL:   cfg.Video.BaseURL,
		Languages: cfg.Video.Languages,
		Timeout:   time.Duration(cfg.Video.Timeout) * time.Second,
	})
	return &app{
		cfg:     cfg,
		manager: manager,
		scorer:  scorer,
		resumes: service.NewResumeService(extract.NewPDFExtractor(), scorer, manager),
		videos:  service.NewVideoService(fetcher, manager, cfg.Video.MaxTranscriptChars),
	}, nil
}
