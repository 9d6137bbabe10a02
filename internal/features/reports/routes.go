package reports

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers the report-related routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	registry := wards.NewRegistry(cfg.Wards)
	handler := NewHandler(repo, registry)

	auth := middleware.Auth(cfg)
	admin := middleware.RequireAdmin()

	group := router.Group("/reports")
	{
		group.GET("", handler.List)
		group.POST("", auth, handler.Create)
		group.GET("/mine", auth, handler.ListMine)
		group.GET("/:id", handler.Get)

		group.PATCH("/:id/status", auth, admin, handler.UpdateStatus)
		group.PATCH("/:id/urgent", auth, admin, handler.UpdateUrgent)
		group.DELETE("/:id", auth, admin, handler.Delete)
	}
}
