package wards

import (
	"github.com/gin-gonic/gin"
	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
)

// RegisterRoutes exposes the ward list for form population
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	registry := NewRegistry(cfg.Wards)

	router.GET("/wards", func(c *gin.Context) {
		response.Success(c, registry.List())
	})
}
