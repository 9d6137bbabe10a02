package contacts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status constants
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Contact represents a message from a resident to the administrators
type Contact struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AuthorID   *primitive.ObjectID `bson:"authorId,omitempty" json:"authorId,omitempty"`
	FullName   string              `bson:"fullName" json:"fullName"`
	Email      string              `bson:"email" json:"email"`
	Phone      string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Ward       string              `bson:"ward,omitempty" json:"ward,omitempty"`
	Subject    string              `bson:"subject" json:"subject"`
	Message    string              `bson:"message" json:"message"`
	Status     string              `bson:"status" json:"status"`
	AdminNotes string              `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CreateRequest represents the public contact form payload
type CreateRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty"`
	Ward     string `json:"ward" binding:"omitempty"`
	Subject  string `json:"subject" binding:"required,max=200"`
	Message  string `json:"message" binding:"required,max=5000"`
}

// UpdateRequest represents the admin triage payload. Both fields optional.
type UpdateRequest struct {
	Status     *string `json:"status" binding:"omitempty,oneof=new read replied"`
	AdminNotes *string `json:"adminNotes" binding:"omitempty,max=2000"`
}

// Stats is the group-by-status breakdown for the dashboard
type Stats struct {
	Total        int64 `json:"total"`
	NewCount     int64 `json:"newCount"`
	ReadCount    int64 `json:"readCount"`
	RepliedCount int64 `json:"repliedCount"`
}
