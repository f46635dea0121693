package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/gistly/internal/middleware"
)

type RouterDeps struct {
	Resume     *ResumeHandler
	Video      *VideoHandler
	Properties *PropertiesHandler
	// RateLimit applies to the routes that call the model; 0 disables it.
	RateLimit time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/properties", deps.Properties.Get)

	api.POST("/resume/extract", deps.Resume.Extract)
	api.POST("/resume/score", deps.Resume.Score)
	api.POST("/video/id", deps.Video.ID)

	aiGroup := api.Group("")
	aiGroup.Use(middleware.RateLimit(deps.RateLimit))
	aiGroup.POST("/resume/analyze", deps.Resume.Analyze)
	aiGroup.POST("/video/summary", deps.Video.Summary)
}
