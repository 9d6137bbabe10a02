package votes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/reports"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

type fakeVoteStore struct {
	votes map[string]bool
}

func newFakeVoteStore() *fakeVoteStore {
	return &fakeVoteStore{votes: make(map[string]bool)}
}

func voteKey(reportID, userID primitive.ObjectID) string {
	return reportID.Hex() + ":" + userID.Hex()
}

func (f *fakeVoteStore) Insert(_ context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	key := voteKey(reportID, userID)
	if f.votes[key] {
		return false, nil
	}
	f.votes[key] = true
	return true, nil
}

func (f *fakeVoteStore) Remove(_ context.Context, reportID, userID primitive.ObjectID) error {
	delete(f.votes, voteKey(reportID, userID))
	return nil
}

func (f *fakeVoteStore) Exists(_ context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	return f.votes[voteKey(reportID, userID)], nil
}

type fakeReportStore struct {
	reports map[primitive.ObjectID]*reports.Report
	incErr  error
}

func newFakeReportStore(ids ...primitive.ObjectID) *fakeReportStore {
	store := &fakeReportStore{reports: make(map[primitive.ObjectID]*reports.Report)}
	for _, id := range ids {
		store.reports[id] = &reports.Report{ID: id}
	}
	return store
}

func (f *fakeReportStore) GetByID(_ context.Context, id primitive.ObjectID) (*reports.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copy := *report
	return &copy, nil
}

func (f *fakeReportStore) IncrementVoteCount(_ context.Context, id primitive.ObjectID, delta int) error {
	if f.incErr != nil {
		return f.incErr
	}
	report, ok := f.reports[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	report.VoteCount += delta
	return nil
}

func TestCastIsIdempotent(t *testing.T) {
	reportID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	reportStore := newFakeReportStore(reportID)
	service := NewService(newFakeVoteStore(), reportStore)

	first, err := service.Cast(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.True(t, first.Accepted)
	require.Equal(t, 1, first.NewCount)

	second, err := service.Cast(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.False(t, second.Accepted)
	require.Equal(t, 1, second.NewCount)

	require.Equal(t, 1, reportStore.reports[reportID].VoteCount)
}

func TestCastDifferentUsersBothCount(t *testing.T) {
	reportID := primitive.NewObjectID()
	reportStore := newFakeReportStore(reportID)
	service := NewService(newFakeVoteStore(), reportStore)

	r1, err := service.Cast(context.Background(), reportID, primitive.NewObjectID())
	require.NoError(t, err)
	require.True(t, r1.Accepted)

	r2, err := service.Cast(context.Background(), reportID, primitive.NewObjectID())
	require.NoError(t, err)
	require.True(t, r2.Accepted)
	require.Equal(t, 2, r2.NewCount)
}

func TestCastUnknownReport(t *testing.T) {
	service := NewService(newFakeVoteStore(), newFakeReportStore())

	_, err := service.Cast(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCastRollsBackVoteWhenIncrementFails(t *testing.T) {
	reportID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	voteStore := newFakeVoteStore()
	reportStore := newFakeReportStore(reportID)
	reportStore.incErr = errors.New("write failed")
	service := NewService(voteStore, reportStore)

	_, err := service.Cast(context.Background(), reportID, userID)
	require.Error(t, err)

	// No partial write: the vote record must not survive a failed increment.
	exists, err := voteStore.Exists(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.False(t, exists)

	// A retry after the store recovers succeeds.
	reportStore.incErr = nil
	result, err := service.Cast(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Equal(t, 1, result.NewCount)
}

func TestStatus(t *testing.T) {
	reportID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	service := NewService(newFakeVoteStore(), newFakeReportStore(reportID))

	status, err := service.Status(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.False(t, status.HasVoted)
	require.Equal(t, 0, status.VoteCount)

	_, err = service.Cast(context.Background(), reportID, userID)
	require.NoError(t, err)

	status, err = service.Status(context.Background(), reportID, userID)
	require.NoError(t, err)
	require.True(t, status.HasVoted)
	require.Equal(t, 1, status.VoteCount)
}
