package announcements

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers the announcement routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	registry := wards.NewRegistry(cfg.Wards)
	handler := NewHandler(repo, registry)

	auth := middleware.Auth(cfg)
	admin := middleware.RequireAdmin()

	group := router.Group("/announcements")
	{
		group.GET("", handler.ListForWard)
		group.GET("/all", auth, admin, handler.ListAll)
		group.POST("", auth, admin, handler.Create)
		group.DELETE("/:id", auth, admin, handler.Delete)
	}
}
