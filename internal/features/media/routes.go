package media

import (
	"github.com/gin-gonic/gin"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/cloudinary"
	"github.com/jirani-app/jirani-api/internal/pkg/logger"
)

// RegisterRoutes registers the media upload route. Uploads are disabled when
// Cloudinary credentials are absent; the handler answers 503 in that case.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	cld, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"jirani",
	)
	if err != nil {
		logger.Warn("cloudinary not configured, media uploads disabled: %v", err)
	}

	handler := NewHandler(cld)

	group := router.Group("/media", middleware.Auth(cfg))
	{
		group.POST("/upload", handler.Upload)
	}
}
