package infra

import (
	"context"
	"fmt"

	"stagecraft/api/internal/sqlinline"
)

// EnsureSchema creates the tables and indexes the service needs. Statements
// are idempotent; there is no migration history.
func EnsureSchema(ctx context.Context, sql SQLExecutor) error {
	statements := []string{
		sqlinline.QSchemaAdmins,
		sqlinline.QSchemaClients,
		sqlinline.QSchemaProjects,
		sqlinline.QSchemaAnalyticsEvents,
		sqlinline.QSchemaAnalyticsEventsIndex,
	}
	for _, stmt := range statements {
		if _, err := sql.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
