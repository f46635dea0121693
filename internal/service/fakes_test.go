package service

import (
	"context"

	"github.com/xxxsen/gistly/internal/model"
)

type fakeGenerator struct {
	resp  string
	err   error
	calls []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, prompt)
	return f.resp, f.err
}

type fakeFetcher struct {
	segments []model.TranscriptSegment
	err      error
	ids      []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error) {
	f.ids = append(f.ids, videoID)
	return f.segments, f.err
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(content []byte) (string, error) {
	f.calls++
	return f.text, f.err
}
