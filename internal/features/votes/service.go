package votes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/reports"
	"github.com/jirani-app/jirani-api/internal/pkg/logger"
)

// VoteStore is the subset of the vote repository the service needs
type VoteStore interface {
	Insert(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error)
	Remove(ctx context.Context, reportID, userID primitive.ObjectID) error
	Exists(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error)
}

// ReportStore is the subset of the report repository the service needs
type ReportStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*reports.Report, error)
	IncrementVoteCount(ctx context.Context, id primitive.ObjectID, delta int) error
}

// Service implements vote casting. The check-then-increment sequence relies
// on the unique (reportId, userId) index as its atomic insert-if-absent
// primitive: two concurrent votes from the same resident race on the insert
// and exactly one wins the increment.
type Service struct {
	votes   VoteStore
	reports ReportStore
}

func NewService(votes VoteStore, reports ReportStore) *Service {
	return &Service{votes: votes, reports: reports}
}

// Cast records a vote on a report. Repeated calls from the same resident
// return Accepted=false with the count unchanged and never error.
func (s *Service) Cast(ctx context.Context, reportID, userID primitive.ObjectID) (*CastResult, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	created, err := s.votes.Insert(ctx, reportID, userID)
	if err != nil {
		return nil, err
	}

	if !created {
		return &CastResult{Accepted: false, NewCount: report.VoteCount}, nil
	}

	if err := s.reports.IncrementVoteCount(ctx, reportID, 1); err != nil {
		// Roll the vote back so no partial write survives.
		if rbErr := s.votes.Remove(ctx, reportID, userID); rbErr != nil {
			logger.Error("vote rollback failed for report %s user %s: %v",
				reportID.Hex(), userID.Hex(), rbErr)
		}
		return nil, err
	}

	newCount := report.VoteCount + 1
	if fresh, err := s.reports.GetByID(ctx, reportID); err == nil {
		newCount = fresh.VoteCount
	}

	return &CastResult{Accepted: true, NewCount: newCount}, nil
}

// Status reports whether the resident has voted and the current count
func (s *Service) Status(ctx context.Context, reportID, userID primitive.ObjectID) (*StatusResponse, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	hasVoted, err := s.votes.Exists(ctx, reportID, userID)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{HasVoted: hasVoted, VoteCount: report.VoteCount}, nil
}
