package stats

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/contacts"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers the dashboard stats routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	service := NewService(NewRepository(db))
	contactsRepo := contacts.NewRepository(db)
	handler := NewHandler(service, contactsRepo)

	group := router.Group("/stats", middleware.Auth(cfg), middleware.RequireAdmin())
	{
		group.GET("/dashboard", handler.Dashboard)
	}
}
