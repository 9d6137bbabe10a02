package stats

import (
	"context"
	"math"
	"time"

	"github.com/jirani-app/jirani-api/internal/features/reports"
)

const window = 7 * 24 * time.Hour

// ReportCounter is the subset of the stats repository the service needs
type ReportCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountUrgent(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// Service computes windowed report statistics
type Service struct {
	counter ReportCounter
}

func NewService(counter ReportCounter) *Service {
	return &Service{counter: counter}
}

// ChangePct returns the percentage change from previous to current, rounded
// to one decimal place. A zero baseline yields 0 rather than an undefined
// or infinite growth figure.
func ChangePct(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	pct := (float64(current-previous) / float64(previous)) * 100
	return math.Round(pct*10) / 10
}

// WindowedReportStats counts reports created in [now-7d, now) against the
// preceding 7-day window, plus the status and urgency breakdowns.
func (s *Service) WindowedReportStats(ctx context.Context, now time.Time) (*ReportStats, error) {
	total, err := s.counter.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.counter.CountByStatus(ctx, reports.StatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.counter.CountByStatus(ctx, reports.StatusInProgress)
	if err != nil {
		return nil, err
	}
	resolved, err := s.counter.CountByStatus(ctx, reports.StatusResolved)
	if err != nil {
		return nil, err
	}

	urgent, err := s.counter.CountUrgent(ctx)
	if err != nil {
		return nil, err
	}

	new7d, err := s.counter.CountCreatedBetween(ctx, now.Add(-window), now)
	if err != nil {
		return nil, err
	}
	previous, err := s.counter.CountCreatedBetween(ctx, now.Add(-2*window), now.Add(-window))
	if err != nil {
		return nil, err
	}

	return &ReportStats{
		Total:          total,
		Active:         pending + inProgress,
		Pending:        pending,
		InProgress:     inProgress,
		Resolved:       resolved,
		UrgentCount:    urgent,
		New7d:          new7d,
		New7dChangePct: ChangePct(new7d, previous),
	}, nil
}
