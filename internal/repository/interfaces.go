package repository

import (
	"context"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

// KV is a flat, device-local string store.
type KV interface {
	// Get reports found == false for a missing key; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all entries, atomically where the backend allows it.
	SetMany(ctx context.Context, entries map[string]string) error
	// Clear removes every entry in the store, not only the ones this app wrote.
	Clear(ctx context.Context) error
}

// Snapshots persists the full ledger state as one unit.
type Snapshots interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
	Clear(ctx context.Context) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
