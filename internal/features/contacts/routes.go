package contacts

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers the contact routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	auth := middleware.Auth(cfg)
	admin := middleware.RequireAdmin()

	group := router.Group("/contacts")
	{
		group.POST("", middleware.OptionalAuth(cfg), handler.Create)
		group.GET("", auth, admin, handler.List)
		group.PATCH("/:id", auth, admin, handler.Update)
	}
}
