// Package app assembles the ledger service and its supporting infrastructure
// from a Config. Both the HTTP server and the CLI start here.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/db"
	"github.com/baharkarakas/expense-tracker/internal/events"
	"github.com/baharkarakas/expense-tracker/internal/events/kafka"
	"github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/baharkarakas/expense-tracker/internal/repository/file"
	"github.com/baharkarakas/expense-tracker/internal/repository/memory"
	"github.com/baharkarakas/expense-tracker/internal/repository/postgres"
	"github.com/baharkarakas/expense-tracker/internal/services"
	"github.com/baharkarakas/expense-tracker/internal/worker"
)

type App struct {
	Ledger *services.LedgerService

	pool      *worker.Pool
	publisher *kafka.Publisher
	pg        *pgxpool.Pool
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	a := &App{}

	sinks := events.MultiSink{events.NewLogSink(log)}

	var kv repository.KV
	switch cfg.StoreDriver {
	case config.DriverMemory:
		kv = memory.NewKVStore()
	case config.DriverFile:
		fs, err := file.Open(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		log.Debug("file store opened", "path", fs.Path())
		kv = fs
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.pg = pool
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				a.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		repos := postgres.NewRepositories(pool)
		kv = repos.KV
		sinks = append(sinks, repos.AuditLogs)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if len(cfg.KafkaBrokers) > 0 {
		a.publisher = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		sinks = append(sinks, a.publisher)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	a.pool = worker.NewPool(workers, 256)

	svc, err := services.NewLedgerService(ctx, repository.NewSnapshotStore(kv),
		services.WithAuditor(events.NewDispatcher(sinks, a.pool)),
		services.WithDateLayout(cfg.DateLayout),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Ledger = svc

	log.Info("ledger ready", "driver", cfg.StoreDriver, "transactions", len(svc.Snapshot().Transactions), "kafka", a.publisher != nil)
	return a, nil
}

// Close drains pending audit events before releasing the sinks they write to.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Stop()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			slog.Warn("kafka close", "err", err)
		}
	}
	if a.pg != nil {
		a.pg.Close()
	}
}
