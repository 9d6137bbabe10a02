package announcements

import (
	"sort"
	"time"
)

func priorityRank(priority string) int {
	if priority == PriorityPinned {
		return 1
	}
	return 2
}

// dateOf truncates a time to its calendar date in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// VisibleOn reports whether the announcement is still current on the given
// day. Expiry is a date-only comparison: an announcement expiring today is
// still visible.
func (a *Announcement) VisibleOn(now time.Time) bool {
	if a.ExpiresAt == nil {
		return true
	}
	return !dateOf(*a.ExpiresAt).Before(dateOf(now))
}

// Resolve filters out expired announcements and orders the rest: pinned
// before normal, then newest first. The sort is stable, so entries with
// equal priority and createdAt keep their input order.
func Resolve(items []Announcement, now time.Time) []Announcement {
	resolved := make([]Announcement, 0, len(items))
	for _, a := range items {
		if a.VisibleOn(now) {
			resolved = append(resolved, a)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		ri, rj := priorityRank(resolved[i].Priority), priorityRank(resolved[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return resolved[i].CreatedAt.After(resolved[j].CreatedAt)
	})

	return resolved
}
