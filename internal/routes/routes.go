package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/announcements"
	"github.com/jirani-app/jirani-api/internal/features/auth"
	"github.com/jirani-app/jirani-api/internal/features/contacts"
	"github.com/jirani-app/jirani-api/internal/features/media"
	"github.com/jirani-app/jirani-api/internal/features/reports"
	"github.com/jirani-app/jirani-api/internal/features/stats"
	"github.com/jirani-app/jirani-api/internal/features/votes"
	"github.com/jirani-app/jirani-api/internal/features/wards"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	// API v1 group
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, db, cfg)
	wards.RegisterRoutes(api, cfg)
	reports.RegisterRoutes(api, db, cfg)
	votes.RegisterRoutes(api, db, cfg)
	announcements.RegisterRoutes(api, db, cfg)
	contacts.RegisterRoutes(api, db, cfg)
	stats.RegisterRoutes(api, db, cfg)
	media.RegisterRoutes(api, cfg)
}
