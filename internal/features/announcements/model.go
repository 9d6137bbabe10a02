package announcements

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category constants
const (
	CategoryInformation = "information"
	CategoryWarning     = "warning"
	CategoryUrgent      = "urgent"
	CategoryEvent       = "event"
)

// Priority constants. Pinned announcements sort before normal ones
// regardless of recency.
const (
	PriorityPinned = "pinned"
	PriorityNormal = "normal"
)

// Announcement represents an admin notice targeted at one ward or all wards.
// Title and message carry both languages; Swahili may be empty.
type Announcement struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID   primitive.ObjectID `bson:"authorId" json:"authorId"`
	TitleEn    string             `bson:"titleEn" json:"titleEn"`
	TitleSw    string             `bson:"titleSw" json:"titleSw"`
	MessageEn  string             `bson:"messageEn" json:"messageEn"`
	MessageSw  string             `bson:"messageSw" json:"messageSw"`
	Category   string             `bson:"category" json:"category"`
	Priority   string             `bson:"priority" json:"priority"`
	TargetWard string             `bson:"targetWard" json:"targetWard"`
	ExpiresAt  *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateRequest represents the payload for publishing an announcement
type CreateRequest struct {
	TitleEn    string     `json:"titleEn" binding:"required"`
	TitleSw    string     `json:"titleSw" binding:"omitempty"`
	MessageEn  string     `json:"messageEn" binding:"required"`
	MessageSw  string     `json:"messageSw" binding:"omitempty"`
	Category   string     `json:"category" binding:"omitempty,oneof=information warning urgent event"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=pinned normal"`
	TargetWard string     `json:"targetWard" binding:"omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt" binding:"omitempty"`
}

// ApplyDefaults fills the optional fields the way the portal expects
func (r *CreateRequest) ApplyDefaults() {
	if r.Category == "" {
		r.Category = CategoryInformation
	}
	if r.Priority == "" {
		r.Priority = PriorityNormal
	}
	if r.TargetWard == "" {
		r.TargetWard = "all"
	}
}
