package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/infra"
	"stagecraft/api/internal/sqlinline"
)

// ClientRepositoryPG implements domain.ClientRepository backed by PostgreSQL.
type ClientRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewClientRepository creates a new ClientRepositoryPG.
func NewClientRepository(sql infra.SQLExecutor) *ClientRepositoryPG {
	return &ClientRepositoryPG{sql: sql}
}

// List returns all clients ordered ascending by sort order.
func (r *ClientRepositoryPG) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetByID fetches a single client.
func (r *ClientRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectClientByID, id)
	var c domain.Client
	if err := scanClient(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new client; id comes from the caller.
func (r *ClientRepositoryPG) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertClient,
		client.ID,
		client.Name,
		client.Logo,
		client.Subtitle,
		client.Description,
		client.Order,
	)
	created := *client
	if err := row.Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies only the fields present in the patch and returns the stored
// record.
func (r *ClientRepositoryPG) Update(ctx context.Context, id string, patch domain.ClientPatch) (*domain.Client, error) {
	var order *int32
	if patch.Order != nil {
		v := int32(*patch.Order)
		order = &v
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateClient,
		id,
		patch.Name,
		patch.Logo,
		patch.Subtitle,
		patch.Description,
		order,
	)
	var c domain.Client
	if err := scanClient(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a client; deleting an absent id is an error, not a no-op.
func (r *ClientRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteClient, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row, c *domain.Client) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Logo,
		&c.Subtitle,
		&c.Description,
		&c.Order,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

var _ domain.ClientRepository = (*ClientRepositoryPG)(nil)
