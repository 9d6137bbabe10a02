package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jirani-app/jirani-api/internal/features/reports"
)

type fakeCounter struct {
	statuses  []string
	urgent    int64
	createdAt []time.Time
}

func (f *fakeCounter) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.createdAt)), nil
}

func (f *fakeCounter) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, s := range f.statuses {
		if s == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeCounter) CountUrgent(_ context.Context) (int64, error) {
	return f.urgent, nil
}

func (f *fakeCounter) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, t := range f.createdAt {
		if !t.Before(from) && t.Before(to) {
			n++
		}
	}
	return n, nil
}

func TestChangePct(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"zero baseline", 5, 0, 0},
		{"both zero", 0, 0, 0},
		{"halved", 1, 2, -50.0},
		{"doubled", 4, 2, 100.0},
		{"unchanged", 3, 3, 0},
		{"rounded to one decimal", 1, 3, -66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ChangePct(tt.current, tt.previous))
		})
	}
}

func TestWindowedReportStats(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base.AddDate(0, 0, 9)

	// Reports created at T, T+1d and T+8d. With now = T+9d the current
	// window [T+2d, T+9d) holds one report, the previous [T-5d, T+2d)
	// holds two.
	counter := &fakeCounter{
		statuses: []string{reports.StatusPending, reports.StatusInProgress, reports.StatusResolved},
		urgent:   1,
		createdAt: []time.Time{
			base,
			base.AddDate(0, 0, 1),
			base.AddDate(0, 0, 8),
		},
	}

	stats, err := NewService(counter).WindowedReportStats(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, int64(3), stats.Total)
	require.Equal(t, int64(1), stats.Pending)
	require.Equal(t, int64(1), stats.InProgress)
	require.Equal(t, int64(1), stats.Resolved)
	require.Equal(t, int64(2), stats.Active)
	require.Equal(t, int64(1), stats.UrgentCount)
	require.Equal(t, int64(1), stats.New7d)
	require.Equal(t, -50.0, stats.New7dChangePct)
}

func TestWindowedReportStatsZeroBaseline(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Five reports inside the current window and none before it: the
	// change figure must be 0, not infinite.
	counter := &fakeCounter{}
	for i := 0; i < 5; i++ {
		counter.createdAt = append(counter.createdAt, now.AddDate(0, 0, -1))
		counter.statuses = append(counter.statuses, reports.StatusPending)
	}

	stats, err := NewService(counter).WindowedReportStats(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, int64(5), stats.New7d)
	require.Equal(t, 0.0, stats.New7dChangePct)
}
