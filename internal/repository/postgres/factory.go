package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/expense-tracker/internal/repository"
)

type Repositories struct {
	KV        repo.KV
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		KV:        NewKV(pool),
		AuditLogs: &auditLogsRepo{pool},
	}
}
