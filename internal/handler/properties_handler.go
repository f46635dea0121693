package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/gistly/internal/pkg/response"
)

type Properties struct {
	Keywords           []string `json:"keywords"`
	MaxTranscriptChars int      `json:"max_transcript_chars"`
	MaxUploadSize      int64    `json:"max_upload_size"`
	AIEnabled          bool     `json:"ai_enabled"`
	AIProvider         string   `json:"ai_provider"`
	AIModel            string   `json:"ai_model"`
}

type PropertiesHandler struct {
	properties Properties
}

func NewPropertiesHandler(properties Properties) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

func (h *PropertiesHandler) Get(c *gin.Context) {
	response.Success(c, gin.H{"properties": h.properties})
}
