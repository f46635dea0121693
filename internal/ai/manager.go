package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	FallbackSuggestions = "No suggestions generated."
	FallbackSummary     = "No summary generated."
)

type ManagerConfig struct {
	// Timeout in seconds; 0 leaves timeouts to the provider's HTTP client.
	Timeout int
}

type Manager struct {
	generator IGenerator
	cfg       ManagerConfig
}

// NewManager accepts a nil generator; every request then fails with
// ErrUnavailable before a prompt is built.
func NewManager(generator IGenerator, cfg ManagerConfig) *Manager {
	return &Manager{generator: generator, cfg: cfg}
}

func (m *Manager) Enabled() bool {
	return m != nil && m.generator != nil
}

func (m *Manager) Suggest(ctx context.Context, resumeText string, role string) (string, error) {
	if !m.Enabled() {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf(`Analyze the following resume and provide suggestions for improvement.
Also, generate three optimized bullet points based on the job role '%s'.
Resume:
%s`, role, resumeText)
	return m.generateText(ctx, "suggest", prompt, FallbackSuggestions)
}

func (m *Manager) Summarize(ctx context.Context, transcript string) (string, error) {
	if !m.Enabled() {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf("Summarize this YouTube video transcript:\n\n%s", transcript)
	return m.generateText(ctx, "summarize", prompt, FallbackSummary)
}

func (m *Manager) generateText(ctx context.Context, feature string, prompt string, fallback string) (string, error) {
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(m.cfg.Timeout)*time.Second)
		defer cancel()
	}
	logger := logutil.GetLogger(ctx).With(zap.String("feature", feature))
	resp, err := m.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("ai generate failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	text := strings.TrimSpace(resp)
	if text == "" {
		logger.Warn("empty ai response, using fallback")
		return fallback, nil
	}
	logger.Debug("ai generate done", zap.Int("prompt_len", len(prompt)), zap.Int("resp_len", len(text)))
	return text, nil
}
