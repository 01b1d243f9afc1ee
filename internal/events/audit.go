// Package events builds audit records for ledger mutations and ships them to
// one or more sinks off the request path.
package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

const EntityLedger = "ledger"

// Actions
const (
	ActionInitialAmountSet    = "ledger.initial_amount_set"
	ActionTransactionRecorded = "ledger.transaction_recorded"
	ActionTransactionRejected = "ledger.transaction_rejected"
	ActionCleared             = "ledger.cleared"
)

type Option func(*models.AuditLog)

func WithAction(action string) Option {
	return func(l *models.AuditLog) {
		l.Action = action
	}
}

func WithDetails(details map[string]any) Option {
	return func(l *models.AuditLog) {
		for k, v := range details {
			l.Details[k] = v
		}
	}
}

func WithTime(t time.Time) Option {
	return func(l *models.AuditLog) {
		l.CreatedAt = t.UTC()
	}
}

func New(opts ...Option) models.AuditLog {
	l := models.AuditLog{
		ID:         uuid.NewString(),
		EntityType: EntityLedger,
		Details:    make(map[string]any),
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// LogSink writes audit records to a structured logger.
type LogSink struct{ log *slog.Logger }

func NewLogSink(log *slog.Logger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Create(ctx context.Context, l models.AuditLog) error {
	s.log.InfoContext(ctx, "audit", "id", l.ID, "action", l.Action, "details", l.Details)
	return nil
}

// MultiSink fans a record out to every sink and joins their errors.
type MultiSink []repository.AuditLogs

func (m MultiSink) Create(ctx context.Context, l models.AuditLog) error {
	var errs []error
	for _, s := range m {
		if err := s.Create(ctx, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ repository.AuditLogs = (*LogSink)(nil)
	_ repository.AuditLogs = MultiSink(nil)
)
