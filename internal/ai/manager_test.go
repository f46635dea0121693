package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	resp    string
	err     error
	prompts []string
	wait    time.Duration
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.wait > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.wait):
		}
	}
	return f.resp, f.err
}

func TestManager_Suggest(t *testing.T) {
	gen := &fakeGenerator{resp: "  use action verbs  "}
	m := NewManager(gen, ManagerConfig{})
	out, err := m.Suggest(context.Background(), "I know Python", "Data Scientist")
	require.NoError(t, err)
	require.Equal(t, "use action verbs", out)
	require.Len(t, gen.prompts, 1)
	require.Equal(t, "Analyze the following resume and provide suggestions for improvement.\n"+
		"Also, generate three optimized bullet points based on the job role 'Data Scientist'.\n"+
		"Resume:\nI know Python", gen.prompts[0])
}

func TestManager_Summarize(t *testing.T) {
	gen := &fakeGenerator{resp: "a short summary"}
	m := NewManager(gen, ManagerConfig{})
	out, err := m.Summarize(context.Background(), "hello world")
	require.NoError(t, err)
	require.Equal(t, "a short summary", out)
	require.Equal(t, "Summarize this YouTube video transcript:\n\nhello world", gen.prompts[0])
}

func TestManager_EmptyResponseFallback(t *testing.T) {
	m := NewManager(&fakeGenerator{resp: " \n "}, ManagerConfig{})
	out, err := m.Summarize(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, FallbackSummary, out)

	out, err = m.Suggest(context.Background(), "x", "y")
	require.NoError(t, err)
	require.Equal(t, FallbackSuggestions, out)
}

func TestManager_GenerateError(t *testing.T) {
	cause := errors.New("quota exceeded")
	m := NewManager(&fakeGenerator{err: cause}, ManagerConfig{})
	_, err := m.Summarize(context.Background(), "x")
	require.ErrorIs(t, err, ErrGenerate)
	require.ErrorIs(t, err, cause)
}

func TestManager_Unavailable(t *testing.T) {
	m := NewManager(nil, ManagerConfig{})
	require.False(t, m.Enabled())
	_, err := m.Suggest(context.Background(), "x", "y")
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = m.Summarize(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnavailable)

	var nilManager *Manager
	require.False(t, nilManager.Enabled())
}

func TestManager_Timeout(t *testing.T) {
	m := NewManager(&fakeGenerator{resp: "late", wait: 3 * time.Second}, ManagerConfig{Timeout: 1})
	_, err := m.Summarize(context.Background(), "x")
	require.ErrorIs(t, err, ErrGenerate)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
