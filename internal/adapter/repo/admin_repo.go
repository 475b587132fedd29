package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/infra"
	"stagecraft/api/internal/sqlinline"
)

// AdminRepositoryPG implements domain.AdminRepository backed by PostgreSQL.
type AdminRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAdminRepository creates a new AdminRepositoryPG.
func NewAdminRepository(sql infra.SQLExecutor) *AdminRepositoryPG {
	return &AdminRepositoryPG{sql: sql}
}

// Count returns the number of admin accounts.
func (r *AdminRepositoryPG) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountAdmins).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new admin. The caller provides id, normalized email and
// password hash.
func (r *AdminRepositoryPG) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertAdmin,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
	)
	created := *admin
	if err := row.Scan(&created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByEmail fetches an admin by exact (normalized) email.
func (r *AdminRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectAdminByEmail, email)
	var admin domain.Admin
	if err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name, &admin.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

var _ domain.AdminRepository = (*AdminRepositoryPG)(nil)
