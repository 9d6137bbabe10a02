package votes

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote represents a resident's vote on a report. The (reportId, userId)
// pair is unique; votes are permanent once cast.
type Vote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID  primitive.ObjectID `bson:"reportId" json:"reportId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CastResult is returned after a vote attempt. Accepted is false when the
// resident had already voted; that is not an error.
type CastResult struct {
	Accepted bool `json:"accepted"`
	NewCount int  `json:"voteCount"`
}

// StatusResponse for GET /reports/:id/vote
type StatusResponse struct {
	HasVoted  bool `json:"hasVoted"`
	VoteCount int  `json:"voteCount"`
}
