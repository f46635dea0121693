package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/middleware"
	"github.com/xxxsen/gistly/internal/pkg/errcode"
	appErr "github.com/xxxsen/gistly/internal/pkg/errors"
	"github.com/xxxsen/gistly/internal/pkg/response"
	"github.com/xxxsen/gistly/internal/service"
)

const (
	MsgInvalidRequest        = "invalid request"
	MsgFileRequired          = "Please upload your resume (PDF)."
	MsgUnsupportedFile       = "Only PDF resumes are supported."
	MsgRoleRequired          = "Please enter your target job role."
	MsgInvalidVideoURL       = "Please enter a valid YouTube URL!"
	MsgTranscriptUnavailable = "Could not fetch the transcript. The video might not have captions enabled."
	MsgAIUnavailable         = "API Key is missing. Set it in environment variables."
	MsgExtractFailed         = "Could not extract text from the uploaded document."
	MsgGenerateFailed        = "Could not generate a response from the AI model."
	MsgInternal              = "internal error"
)

// Describe maps a pipeline error to its response code and user-facing
// message.
func Describe(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrAIUnavailable):
		return errcode.ErrAIUnavailable, MsgAIUnavailable
	case errors.Is(err, appErr.ErrInvalidVideoURL):
		return errcode.ErrInvalidVideoURL, MsgInvalidVideoURL
	case errors.Is(err, appErr.ErrTranscriptUnavailable):
		return errcode.ErrTranscriptUnavailable, MsgTranscriptUnavailable
	case errors.Is(err, appErr.ErrUnsupportedFile):
		return errcode.ErrInvalidFile, MsgUnsupportedFile
	case errors.Is(err, appErr.ErrExtractFailed):
		return errcode.ErrExtractFailed, MsgExtractFailed
	case errors.Is(err, appErr.ErrGenerateFailed):
		return errcode.ErrAIGenerateFailed, MsgGenerateFailed
	case errors.Is(err, appErr.ErrInvalid):
		return errcode.ErrInvalid, MsgInvalidRequest
	default:
		return errcode.ErrInternal, MsgInternal
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get(middleware.ContextRequestIDKey)
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	code, msg := Describe(err)
	response.Error(c, code, msg)
}

// readUpload reads the whole multipart file and releases it before
// returning. It writes the error response itself and reports ok=false.
func readUpload(c *gin.Context, field string, maxSize int64) (string, []byte, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		response.Error(c, errcode.ErrInvalidFile, MsgFileRequired)
		return "", nil, false
	}
	if maxSize > 0 && file.Size > maxSize {
		response.Error(c, errcode.ErrInvalidFile, "file too large (max "+formatUploadLimit(maxSize)+")")
		return "", nil, false
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, errcode.ErrInvalidFile, "failed to open file")
		return "", nil, false
	}
	defer opened.Close()
	data, err := io.ReadAll(opened)
	if err != nil {
		response.Error(c, errcode.ErrInvalidFile, "failed to read file")
		return "", nil, false
	}
	return file.Filename, data, true
}
