package domain

import (
	"context"
	"time"
)

// AdminRepository defines access methods for admin accounts.
type AdminRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// ClientRepository handles persistence for client entries.
type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, client *Client) (*Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (*Client, error)
	Delete(ctx context.Context, id string) error
}

// ProjectRepository handles persistence for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, id string, project *Project) (*Project, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
	TopByViews(ctx context.Context, limit int) ([]Project, error)
}

// AnalyticsRepository appends view events and answers aggregate queries.
type AnalyticsRepository interface {
	Append(ctx context.Context, event *AnalyticsEvent) error
	CountByType(ctx context.Context, eventType EventType, since *time.Time) (int64, error)
	DailyPageViews(ctx context.Context, since time.Time) ([]DailyCount, error)
	DistinctIPCount(ctx context.Context, since time.Time) (int64, error)
}
