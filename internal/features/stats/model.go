package stats

import "github.com/jirani-app/jirani-api/internal/features/contacts"

// ReportStats is the windowed report breakdown shown on the admin dashboard
type ReportStats struct {
	Total          int64   `json:"total"`
	Active         int64   `json:"active"`
	Pending        int64   `json:"pending"`
	InProgress     int64   `json:"inProgress"`
	Resolved       int64   `json:"resolved"`
	UrgentCount    int64   `json:"urgentCount"`
	New7d          int64   `json:"new7d"`
	New7dChangePct float64 `json:"new7dChangePct"`
}

// Dashboard composes the report and contact breakdowns
type Dashboard struct {
	Reports  ReportStats    `json:"reports"`
	Contacts contacts.Stats `json:"contacts"`
}
