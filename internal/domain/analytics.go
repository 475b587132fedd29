package domain

import "time"

// EventType enumerates the recorded analytics event kinds.
type EventType string

const (
	EventPageView    EventType = "page_view"
	EventProjectView EventType = "project_view"
)

// AnalyticsEvent is an immutable record of a single page or project view.
// Events are append-only; aggregation reads them, nothing updates them.
type AnalyticsEvent struct {
	ID        string
	Type      EventType
	Page      string
	ProjectID string // set only for project_view
	IP        string
	UserAgent string
	Referrer  string
	Country   string // ISO code when GeoIP is configured, else empty
	CreatedAt time.Time
}

// DailyCount is one calendar-date bucket of page views. Date is the UTC date
// portion formatted as YYYY-MM-DD.
type DailyCount struct {
	Date  string
	Count int64
}
