package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
)

// RegisterRoutes registers auth and user-administration routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	registry := wards.NewRegistry(cfg.Wards)
	handler := NewHandler(repo, registry, cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/me", middleware.Auth(cfg), handler.Me)
	}

	usersGroup := router.Group("/users", middleware.Auth(cfg), middleware.RequireAdmin())
	{
		usersGroup.GET("", handler.ListUsers)
		usersGroup.PATCH("/:id/status", handler.UpdateUserStatus)
	}
}
