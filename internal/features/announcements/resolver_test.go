package announcements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mkAnnouncement(title, priority string, createdAt time.Time, expiresAt *time.Time) Announcement {
	return Announcement{
		TitleEn:   title,
		Priority:  priority,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}

func TestResolveFiltersExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	// Expiry is date-only: expiring earlier today still counts as visible.
	todayMorning := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)

	items := []Announcement{
		mkAnnouncement("expired", PriorityNormal, now.AddDate(0, 0, -10), &yesterday),
		mkAnnouncement("expires-today", PriorityNormal, now.AddDate(0, 0, -5), &todayMorning),
		mkAnnouncement("no-expiry", PriorityNormal, now.AddDate(0, 0, -3), nil),
	}

	resolved := Resolve(items, now)

	require.Len(t, resolved, 2)
	for _, a := range resolved {
		require.NotEqual(t, "expired", a.TitleEn)
	}
}

func TestResolveOrdersPinnedFirstThenNewest(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	items := []Announcement{
		mkAnnouncement("normal-old", PriorityNormal, now.AddDate(0, 0, -9), nil),
		mkAnnouncement("pinned-old", PriorityPinned, now.AddDate(0, 0, -8), nil),
		mkAnnouncement("normal-new", PriorityNormal, now.AddDate(0, 0, -1), nil),
		mkAnnouncement("pinned-new", PriorityPinned, now.AddDate(0, 0, -2), nil),
	}

	resolved := Resolve(items, now)

	require.Len(t, resolved, 4)
	require.Equal(t, "pinned-new", resolved[0].TitleEn)
	require.Equal(t, "pinned-old", resolved[1].TitleEn)
	require.Equal(t, "normal-new", resolved[2].TitleEn)
	require.Equal(t, "normal-old", resolved[3].TitleEn)
}

func TestResolveIsStableForEqualKeys(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -1)

	items := []Announcement{
		mkAnnouncement("first", PriorityNormal, createdAt, nil),
		mkAnnouncement("second", PriorityNormal, createdAt, nil),
		mkAnnouncement("third", PriorityNormal, createdAt, nil),
	}

	resolved := Resolve(items, now)

	require.Equal(t, "first", resolved[0].TitleEn)
	require.Equal(t, "second", resolved[1].TitleEn)
	require.Equal(t, "third", resolved[2].TitleEn)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	items := []Announcement{
		mkAnnouncement("b", PriorityNormal, now.Add(-2*time.Hour), nil),
		mkAnnouncement("a", PriorityPinned, now.Add(-1*time.Hour), nil),
	}

	_ = Resolve(items, now)

	require.Equal(t, "b", items[0].TitleEn)
	require.Equal(t, "a", items[1].TitleEn)
}

func TestApplyDefaults(t *testing.T) {
	req := CreateRequest{TitleEn: "t", MessageEn: "m"}
	req.ApplyDefaults()

	require.Equal(t, CategoryInformation, req.Category)
	require.Equal(t, PriorityNormal, req.Priority)
	require.Equal(t, "all", req.TargetWard)
	require.Nil(t, req.ExpiresAt)
}
