package repo

import (
	"context"
	"time"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/infra"
	"stagecraft/api/internal/sqlinline"
)

// AnalyticsRepositoryPG implements domain.AnalyticsRepository backed by
// PostgreSQL. Events are append-only; nothing here updates or deletes.
type AnalyticsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAnalyticsRepository constructs the repository.
func NewAnalyticsRepository(sql infra.SQLExecutor) *AnalyticsRepositoryPG {
	return &AnalyticsRepositoryPG{sql: sql}
}

// Append records a single view event.
func (r *AnalyticsRepositoryPG) Append(ctx context.Context, event *domain.AnalyticsEvent) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertAnalyticsEvent,
		event.ID,
		string(event.Type),
		event.Page,
		event.ProjectID,
		event.IP,
		event.UserAgent,
		event.Referrer,
		event.Country,
	)
	return err
}

// CountByType counts events of the given type, optionally bounded to events
// at or after since.
func (r *AnalyticsRepositoryPG) CountByType(ctx context.Context, eventType domain.EventType, since *time.Time) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountEventsByType, string(eventType), since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DailyPageViews buckets page views by UTC calendar date, ascending. Dates
// with no events are absent from the result.
func (r *AnalyticsRepositoryPG) DailyPageViews(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QDailyPageViews, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []domain.DailyCount
	for rows.Next() {
		var b domain.DailyCount
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// DistinctIPCount counts distinct page-view source IPs since the given time.
func (r *AnalyticsRepositoryPG) DistinctIPCount(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountDistinctIPs, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ domain.AnalyticsRepository = (*AnalyticsRepositoryPG)(nil)
