package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/ai"
	"github.com/xxxsen/gistly/internal/model"
	appErr "github.com/xxxsen/gistly/internal/pkg/errors"
	"github.com/xxxsen/gistly/internal/youtube"
)

type VideoService struct {
	fetcher  youtube.ITranscriptFetcher
	manager  *ai.Manager
	maxChars int
}

func NewVideoService(fetcher youtube.ITranscriptFetcher, manager *ai.Manager, maxChars int) *VideoService {
	if maxChars <= 0 {
		maxChars = youtube.DefaultMaxTranscriptChars
	}
	return &VideoService{fetcher: fetcher, manager: manager, maxChars: maxChars}
}

func (s *VideoService) MaxTranscriptChars() int {
	return s.maxChars
}

func (s *VideoService) ResolveID(url string) (string, error) {
	id, ok := youtube.ExtractVideoID(strings.TrimSpace(url))
	if !ok {
		return "", appErr.ErrInvalidVideoURL
	}
	return id, nil
}

func (s *VideoService) Transcript(ctx context.Context, videoID string) (string, error) {
	segments, err := s.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", appErr.ErrTranscriptUnavailable, err)
	}
	return youtube.JoinTranscript(segments, s.maxChars), nil
}

// Summarize stops at the first failing step: a bad url never reaches the
// fetcher and a missing transcript never reaches the model.
func (s *VideoService) Summarize(ctx context.Context, url string) (*model.VideoSummary, error) {
	videoID, err := s.ResolveID(url)
	if err != nil {
		return nil, err
	}
	logger := logutil.GetLogger(ctx).With(zap.String("video_id", videoID))
	if !s.manager.Enabled() {
		return nil, ErrAIUnavailable
	}
	transcript, err := s.Transcript(ctx, videoID)
	if err != nil {
		logger.Warn("transcript unavailable", zap.Error(err))
		return nil, err
	}
	summary, err := s.manager.Summarize(ctx, transcript)
	if err != nil {
		if errors.Is(err, ErrAIUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", appErr.ErrGenerateFailed, err)
	}
	logger.Info("video summarized", zap.Int("transcript_len", len(transcript)))
	return &model.VideoSummary{
		VideoID:    videoID,
		Transcript: transcript,
		Summary:    summary,
	}, nil
}
