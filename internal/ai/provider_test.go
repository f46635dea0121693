package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProvider_MissingCredential(t *testing.T) {
	for _, name := range []string{"gemini", "openai", " Gemini "} {
		_, err := NewProvider(name, map[string]interface{}{"api_key": "  "})
		require.ErrorIs(t, err, ErrMissingCredential, name)
		require.ErrorIs(t, err, ErrUnavailable, name)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider("", nil)
	require.Error(t, err)
	_, err = NewProvider("nope", map[string]interface{}{})
	require.Error(t, err)
	_, err = NewProvider("gemini", nil)
	require.Error(t, err)
}

func TestNewProvider_Gemini(t *testing.T) {
	p, err := NewProvider("gemini", map[string]interface{}{"api_key": "k"})
	require.NoError(t, err)
	require.Equal(t, "gemini", p.Name())
}

func TestOpenAIProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-test", req.Model)
		if req.Messages[0].Content == "empty" {
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}
		if req.Messages[0].Content == "fail" {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"quota"}`))
			return
		}
		var resp openAIChatResponse
		resp.Choices = make([]struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}, 1)
		resp.Choices[0].Message.Content = " echo: " + req.Messages[0].Content + " "
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	p, err := NewProvider("openai", map[string]interface{}{"api_key": "secret", "base_url": srv.URL + "/v1"})
	require.NoError(t, err)
	gen := NewGenerator(p, "gpt-test")

	out, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	require.Equal(t, "echo: hi", out)

	out, err = gen.Generate(context.Background(), "empty")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = gen.Generate(context.Background(), "fail")
	require.Error(t, err)

	m := NewManager(gen, ManagerConfig{})
	summary, err := m.Summarize(context.Background(), "ignored")
	require.NoError(t, err)
	require.Contains(t, summary, "echo: Summarize this YouTube video transcript")
}
