package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/xxxsen/gistly/internal/ai"
	"github.com/xxxsen/gistly/internal/ats"
	"github.com/xxxsen/gistly/internal/handler"
	"github.com/xxxsen/gistly/internal/middleware"
	"github.com/xxxsen/gistly/internal/model"
	"github.com/xxxsen/gistly/internal/service"
)

type stubGenerator struct {
	resp  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.resp, s.err
}

type stubFetcher struct {
	segments []model.TranscriptSegment
	err      error
	calls    int
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error) {
	s.calls++
	return s.segments, s.err
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(content []byte) (string, error) {
	return s.text, s.err
}

type testDeps struct {
	generator *stubGenerator
	fetcher   *stubFetcher
	extractor *stubExtractor
	maxUpload int64
}

type envelope struct {
	Code int                    `json:"code"`
	Msg  string                 `json:"msg"`
	Data map[string]interface{} `json:"data"`
}

func setupRouter(t *testing.T, deps testDeps) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var gen ai.IGenerator
	if deps.generator != nil {
		gen = deps.generator
	}
	if deps.fetcher == nil {
		deps.fetcher = &stubFetcher{}
	}
	if deps.extractor == nil {
		deps.extractor = &stubExtractor{}
	}
	manager := ai.NewManager(gen, ai.ManagerConfig{})
	scorer := ats.NewDefaultScorer()
	resumes := service.NewResumeService(deps.extractor, scorer, manager)
	videos := service.NewVideoService(deps.fetcher, manager, 0)

	routerDeps := handler.RouterDeps{
		Resume: handler.NewResumeHandler(resumes, deps.maxUpload),
		Video:  handler.NewVideoHandler(videos),
		Properties: handler.NewPropertiesHandler(handler.Properties{
			Keywords:           scorer.Keywords(),
			MaxTranscriptChars: videos.MaxTranscriptChars(),
			MaxUploadSize:      deps.maxUpload,
			AIEnabled:          manager.Enabled(),
			AIProvider:         "gemini",
			AIModel:            "gemini-2.0-flash",
		}),
	}
	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, routerDeps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine
}

func doJSON(t *testing.T, router http.Handler, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return serve(t, router, req)
}

func doUpload(t *testing.T, router http.Handler, path string, filename string, content []byte, fields map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return serve(t, router, req)
}

func serve(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}
