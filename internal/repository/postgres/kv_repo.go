package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/expense-tracker/internal/repository"
)

type kvRepo struct{ pool *pgxpool.Pool }

func NewKV(pool *pgxpool.Pool) repository.KV {
	return &kvRepo{pool: pool}
}

const upsertEntry = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()`

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, upsertEntry, key, value)
	return err
}

// SetMany writes every entry inside one transaction so a snapshot is never
// half-saved.
func (r *kvRepo) SetMany(ctx context.Context, entries map[string]string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		for k, v := range entries {
			if _, err := tx.Exec(ctx, upsertEntry, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *kvRepo) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM kv_entries`)
	return err
}

func (r *kvRepo) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
