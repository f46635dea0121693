package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/pkg/errcode"
	"github.com/xxxsen/gistly/internal/pkg/response"
	"github.com/xxxsen/gistly/internal/render"
	"github.com/xxxsen/gistly/internal/service"
)

type VideoHandler struct {
	videos *service.VideoService
}

func NewVideoHandler(videos *service.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

type videoRequest struct {
	URL string `json:"url"`
}

func (h *VideoHandler) ID(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, MsgInvalidRequest)
		return
	}
	id, err := h.videos.ResolveID(req.URL)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"video_id": id})
}

func (h *VideoHandler) Summary(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, MsgInvalidRequest)
		return
	}
	res, err := h.videos.Summarize(c.Request.Context(), req.URL)
	if err != nil {
		handleError(c, err)
		return
	}
	summaryHTML, err := render.Markdown(res.Summary)
	if err != nil {
		logutil.GetLogger(c.Request.Context()).Warn("render summary failed", zap.Error(err))
	}
	response.Success(c, gin.H{
		"video_id":     res.VideoID,
		"transcript":   res.Transcript,
		"summary":      res.Summary,
		"summary_html": summaryHTML,
	})
}
