package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/metrics"
	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

// Submitter is satisfied by *worker.Pool.
type Submitter interface {
	TrySubmit(func()) bool
}

// Dispatcher hands audit records to a sink on background workers. A slow or
// failing sink never blocks or fails the ledger operation that emitted them.
type Dispatcher struct {
	sink    repository.AuditLogs
	pool    Submitter
	timeout time.Duration
}

func NewDispatcher(sink repository.AuditLogs, pool Submitter) *Dispatcher {
	return &Dispatcher{sink: sink, pool: pool, timeout: 5 * time.Second}
}

func (d *Dispatcher) Emit(l models.AuditLog) {
	accepted := d.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sink.Create(ctx, l); err != nil {
			metrics.AuditEventsFailed.Inc()
			slog.Error("audit sink", "err", err, "action", l.Action, "id", l.ID)
		}
	})
	if !accepted {
		metrics.AuditEventsFailed.Inc()
		slog.Warn("audit queue full, dropping event", "action", l.Action, "id", l.ID)
	}
}
