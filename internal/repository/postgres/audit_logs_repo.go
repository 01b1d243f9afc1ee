package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(id, entity_type, action, details, created_at) VALUES($1,$2,$3,$4,$5)`,
		l.ID, l.EntityType, l.Action, l.Details, l.CreatedAt,
	)
	return err
}
