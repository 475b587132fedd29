package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/infra"
	"stagecraft/api/internal/sqlinline"
)

// ProjectRepositoryPG implements domain.ProjectRepository backed by
// PostgreSQL. Stats, services and images are stored as jsonb so their order
// survives round trips.
type ProjectRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProjectRepository creates a new ProjectRepositoryPG.
func NewProjectRepository(sql infra.SQLExecutor) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{sql: sql}
}

// List returns projects newest first, optionally filtered by featured flag
// and category, optionally capped.
func (r *ProjectRepositoryPG) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	limit := 0
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListProjects, filter.Featured, filter.Category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

// GetByID fetches a single project.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProjectByID, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new project with a zero view counter.
func (r *ProjectRepositoryPG) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	stats, services, images, err := marshalProjectLists(project)
	if err != nil {
		return nil, err
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProject,
		project.ID,
		project.MainTitle,
		project.Client,
		project.Location,
		project.Date,
		project.Category,
		project.Featured,
		project.Overview,
		stats,
		services,
		images,
		project.ClientLogo,
	)
	created := *project
	if err := row.Scan(&created.Views, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overwrites the full mutable field set; the view counter and
// timestamps are untouched except updated_at.
func (r *ProjectRepositoryPG) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	stats, services, images, err := marshalProjectLists(project)
	if err != nil {
		return nil, err
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateProject,
		id,
		project.MainTitle,
		project.Client,
		project.Location,
		project.Date,
		project.Category,
		project.Featured,
		project.Overview,
		stats,
		services,
		images,
		project.ClientLogo,
	)
	updated := *project
	updated.ID = id
	if err := row.Scan(&updated.Views, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a project; deleting an absent id is an error, not a no-op.
func (r *ProjectRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteProject, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists reports whether a project with the given id is stored.
func (r *ProjectRepositoryPG) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.sql.QueryRow(ctx, sqlinline.QProjectExists, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IncrementViews bumps the denormalized view counter by one. The increment is
// a single atomic statement, never a read-modify-write.
func (r *ProjectRepositoryPG) IncrementViews(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QIncrementProjectViews, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TopByViews returns the most viewed projects, views descending.
func (r *ProjectRepositoryPG) TopByViews(ctx context.Context, limit int) ([]domain.Project, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QTopProjectsByViews, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func marshalProjectLists(p *domain.Project) (stats, services, images []byte, err error) {
	if stats, err = json.Marshal(nonNilStats(p.Stats)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal stats: %w", err)
	}
	if services, err = json.Marshal(nonNilStrings(p.Services)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal services: %w", err)
	}
	if images, err = json.Marshal(nonNilStrings(p.Images)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal images: %w", err)
	}
	return stats, services, images, nil
}

func nonNilStats(in []domain.ProjectStat) []domain.ProjectStat {
	if in == nil {
		return []domain.ProjectStat{}
	}
	return in
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var stats, services, images []byte
	if err := row.Scan(
		&p.ID,
		&p.MainTitle,
		&p.Client,
		&p.Location,
		&p.Date,
		&p.Category,
		&p.Featured,
		&p.Overview,
		&stats,
		&services,
		&images,
		&p.ClientLogo,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stats, &p.Stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	if err := json.Unmarshal(services, &p.Services); err != nil {
		return nil, fmt.Errorf("unmarshal services: %w", err)
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	return &p, nil
}

var _ domain.ProjectRepository = (*ProjectRepositoryPG)(nil)
