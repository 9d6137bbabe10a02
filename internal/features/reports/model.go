package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category constants
const (
	CategorySecurity    = "security"
	CategoryEnvironment = "environment"
	CategoryHealth      = "health"
	CategoryOther       = "other"
)

// Status constants. Reports start pending; admins move them forward.
// Transitions are not locked (a resolved report may be reopened) but every
// transition is logged.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Report represents a civic issue reported by a resident
type Report struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID        primitive.ObjectID `bson:"authorId" json:"authorId"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Category        string             `bson:"category" json:"category"`
	Ward            string             `bson:"ward" json:"ward"`
	LocationDetails string             `bson:"locationDetails,omitempty" json:"locationDetails,omitempty"`
	ImagePath       string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	Status          string             `bson:"status" json:"status"`
	IsUrgent        bool               `bson:"isUrgent" json:"isUrgent"`
	VoteCount       int                `bson:"voteCount" json:"voteCount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateReportRequest represents the payload for submitting a report
type CreateReportRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required,oneof=security environment health other"`
	Ward            string `json:"ward" binding:"required"`
	LocationDetails string `json:"locationDetails" binding:"omitempty,max=500"`
	ImagePath       string `json:"imagePath" binding:"omitempty"`
}

// ListQuery represents the report listing filters. All fields are optional
// and combined with AND semantics.
type ListQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=security environment health other"`
	Status   string `form:"status" binding:"omitempty,oneof=pending in_progress resolved"`
	Ward     string `form:"ward" binding:"omitempty"`
	Search   string `form:"search" binding:"omitempty,max=200"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// UpdateStatusRequest represents the admin payload for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress resolved"`
}

// UpdateUrgentRequest represents the admin payload for the urgent flag
type UpdateUrgentRequest struct {
	IsUrgent *bool `json:"isUrgent" binding:"required"`
}
