package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/handler"
	"github.com/xxxsen/gistly/internal/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gistly",
		Short:         "resume scoring and video summarization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newRunCmd(),
		newAnalyzeCmd(),
		newSummarizeCmd(),
		newScoreCmd(),
		newVideoIDCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run gistly http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			initLogger(cfg)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			return runServer(a)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	return cmd
}

func runServer(a *app) error {
	cfg := a.cfg
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
		zap.Bool("ai_enabled", a.manager.Enabled()),
	)

	deps := handler.RouterDeps{
		Resume: handler.NewResumeHandler(a.resumes, cfg.MaxUploadSize),
		Video:  handler.NewVideoHandler(a.videos),
		Properties: handler.NewPropertiesHandler(handler.Properties{
			Keywords:           a.scorer.Keywords(),
			MaxTranscriptChars: a.videos.MaxTranscriptChars(),
			MaxUploadSize:      cfg.MaxUploadSize,
			AIEnabled:          a.manager.Enabled(),
			AIProvider:         cfg.AI.Provider,
			AIModel:            cfg.AI.Model,
		}),
		RateLimit: time.Duration(cfg.RateLimitSeconds) * time.Second,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		addr,
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", addr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveUntilDone(ctx, engine.Run)
}

// serveUntilDone runs serve until it fails or ctx is cancelled. A serve
// failure is returned so the process exits non-zero.
func serveUntilDone(ctx context.Context, serve func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- serve()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logutil.GetLogger(context.Background()).Info("server stopping...")
		return nil
	}
}
