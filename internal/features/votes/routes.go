package votes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/reports"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers the vote routes under /reports
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	reportsRepo := reports.NewRepository(db)
	service := NewService(repo, reportsRepo)
	handler := NewHandler(service)

	auth := middleware.Auth(cfg)

	group := router.Group("/reports")
	{
		group.POST("/:id/vote", auth, handler.Cast)
		group.GET("/:id/vote", auth, handler.Status)
	}
}
