package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/ai"
	"github.com/xxxsen/gistly/internal/ats"
	"github.com/xxxsen/gistly/internal/extract"
	"github.com/xxxsen/gistly/internal/model"
	appErr "github.com/xxxsen/gistly/internal/pkg/errors"
)

var ErrAIUnavailable = ai.ErrUnavailable

type ResumeService struct {
	extractor extract.IExtractor
	scorer    *ats.Scorer
	manager   *ai.Manager
}

func NewResumeService(extractor extract.IExtractor, scorer *ats.Scorer, manager *ai.Manager) *ResumeService {
	return &ResumeService{extractor: extractor, scorer: scorer, manager: manager}
}

func (s *ResumeService) Keywords() []string {
	return s.scorer.Keywords()
}

func (s *ResumeService) Extract(ctx context.Context, filename string, content []byte) (string, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("file", filename), zap.Int("size", len(content)))
	if !extract.Supported(filename, content) {
		return "", appErr.ErrUnsupportedFile
	}
	text, err := s.extractor.Extract(content)
	if err != nil {
		logger.Warn("extract resume text failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", appErr.ErrExtractFailed, err)
	}
	logger.Debug("resume text extracted", zap.Int("text_len", len(text)))
	return text, nil
}

// Score does not look at the job role; the keyword list is the same for
// every role.
func (s *ResumeService) Score(text string) model.KeywordScore {
	return s.scorer.Score(text)
}

func (s *ResumeService) Analyze(ctx context.Context, filename string, content []byte, role string) (*model.ResumeAnalysis, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("%w: job role is required", appErr.ErrInvalid)
	}
	if !s.manager.Enabled() {
		return nil, ErrAIUnavailable
	}
	text, err := s.Extract(ctx, filename, content)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.manager.Suggest(ctx, text, role)
	if err != nil {
		if errors.Is(err, ErrAIUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", appErr.ErrGenerateFailed, err)
	}
	score := s.Score(text)
	logutil.GetLogger(ctx).Info("resume analyzed",
		zap.String("role", role),
		zap.Float64("score", score.Score),
		zap.Strings("matched", score.Matched),
	)
	return &model.ResumeAnalysis{
		Text:            text,
		Role:            role,
		Score:           score.Score,
		MatchedKeywords: score.Matched,
		Keywords:        s.scorer.Keywords(),
		Suggestions:     suggestions,
	}, nil
}
