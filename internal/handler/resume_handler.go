package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/pkg/errcode"
	"github.com/xxxsen/gistly/internal/pkg/response"
	"github.com/xxxsen/gistly/internal/render"
	"github.com/xxxsen/gistly/internal/service"
)

type ResumeHandler struct {
	resumes       *service.ResumeService
	maxUploadSize int64
}

func NewResumeHandler(resumes *service.ResumeService, maxUploadSize int64) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, maxUploadSize: maxUploadSize}
}

type resumeScoreRequest struct {
	Text string `json:"text"`
}

type resumeAnalyzeResponse struct {
	Text            string   `json:"text"`
	Role            string   `json:"role"`
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Keywords        []string `json:"keywords"`
	Suggestions     string   `json:"suggestions"`
	SuggestionsHTML string   `json:"suggestions_html"`
}

func (h *ResumeHandler) Extract(c *gin.Context) {
	name, data, ok := readUpload(c, "file", h.maxUploadSize)
	if !ok {
		return
	}
	text, err := h.resumes.Extract(c.Request.Context(), name, data)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"text": text})
}

func (h *ResumeHandler) Score(c *gin.Context) {
	var req resumeScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, MsgInvalidRequest)
		return
	}
	response.Success(c, h.resumes.Score(req.Text))
}

func (h *ResumeHandler) Analyze(c *gin.Context) {
	role := strings.TrimSpace(c.PostForm("role"))
	if role == "" {
		response.Error(c, errcode.ErrInvalid, MsgRoleRequired)
		return
	}
	name, data, ok := readUpload(c, "file", h.maxUploadSize)
	if !ok {
		return
	}
	res, err := h.resumes.Analyze(c.Request.Context(), name, data, role)
	if err != nil {
		handleError(c, err)
		return
	}
	suggestionsHTML, err := render.Markdown(res.Suggestions)
	if err != nil {
		logutil.GetLogger(c.Request.Context()).Warn("render suggestions failed", zap.Error(err))
	}
	response.Success(c, resumeAnalyzeResponse{
		Text:            res.Text,
		Role:            res.Role,
		Score:           res.Score,
		MatchedKeywords: res.MatchedKeywords,
		Keywords:        res.Keywords,
		Suggestions:     res.Suggestions,
		SuggestionsHTML: suggestionsHTML,
	})
}
