package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/events"
	"github.com/baharkarakas/expense-tracker/internal/ledger"
	"github.com/baharkarakas/expense-tracker/internal/metrics"
	"github.com/baharkarakas/expense-tracker/internal/models"
	repo "github.com/baharkarakas/expense-tracker/internal/repository"
)

// Auditor receives a record for every intent handled. *events.Dispatcher implements it.
type Auditor interface {
	Emit(models.AuditLog)
}

type noopAuditor struct{}

func (noopAuditor) Emit(models.AuditLog) {}

// Result is what AddTransaction reports back. Recorded is false when the
// intent was ignored for an empty reason or a zero / unparsable amount.
type Result struct {
	Recorded    bool
	Transaction models.Transaction
	Ledger      models.Snapshot
}

// LedgerService owns the application state of one ledger. Every mutation is
// applied to a copy, persisted with a full snapshot save and only then made
// visible. Intents are serialized: each runs to completion before the next.
type LedgerService struct {
	mu     sync.Mutex
	state  *ledger.State
	store  repo.Snapshots
	audit  Auditor
	now    func() time.Time
	layout string
}

type Option func(*LedgerService)

func WithAuditor(a Auditor) Option {
	return func(s *LedgerService) { s.audit = a }
}

func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

func WithDateLayout(layout string) Option {
	return func(s *LedgerService) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// NewLedgerService loads the persisted snapshot once.
func NewLedgerService(ctx context.Context, store repo.Snapshots, opts ...Option) (*LedgerService, error) {
	s := &LedgerService{
		store:  store,
		audit:  noopAuditor{},
		now:    time.Now,
		layout: ledger.DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	s.state = ledger.FromSnapshot(snap, s.layout)
	s.observe()
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *LedgerService) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

func (s *LedgerService) SetInitialAmount(ctx context.Context, value string) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	applied := next.SetInitialAmount(value)
	if err := s.commit(ctx, next); err != nil {
		return models.Snapshot{}, err
	}

	metrics.Resets.WithLabelValues("initial_amount").Inc()
	s.audit.Emit(events.New(
		events.WithAction(events.ActionInitialAmountSet),
		events.WithDetails(map[string]any{"amount": applied.String()}),
	))
	return s.state.Snapshot(), nil
}

func (s *LedgerService) AddTransaction(ctx context.Context, kind models.Kind, method models.Method, reason, amount string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	tx, recorded, err := next.AddTransaction(kind, method, reason, amount, s.now())
	if err != nil {
		return Result{}, err
	}
	if !recorded {
		metrics.TransactionsRejected.Inc()
		s.audit.Emit(events.New(
			events.WithAction(events.ActionTransactionRejected),
			events.WithDetails(map[string]any{"kind": string(kind), "method": string(method), "reason": reason, "amount": amount}),
		))
		return Result{Recorded: false, Ledger: s.state.Snapshot()}, nil
	}

	if err := s.commit(ctx, next); err != nil {
		return Result{}, err
	}

	metrics.TransactionsTotal.WithLabelValues(string(kind), string(method)).Inc()
	s.audit.Emit(events.New(
		events.WithAction(events.ActionTransactionRecorded),
		events.WithDetails(map[string]any{"reason": tx.Reason, "amount": tx.Amount.String(), "method": string(tx.Method), "date": tx.Date}),
	))
	return Result{Recorded: true, Transaction: tx, Ledger: s.state.Snapshot()}, nil
}

// ClearAllData wipes the whole store, then empties the in-memory state.
func (s *LedgerService) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		metrics.StoreErrors.WithLabelValues("clear").Inc()
		return fmt.Errorf("clear ledger: %w", err)
	}
	s.state = ledger.New(s.layout)
	s.observe()

	metrics.Resets.WithLabelValues("clear").Inc()
	s.audit.Emit(events.New(events.WithAction(events.ActionCleared)))
	return nil
}

func (s *LedgerService) commit(ctx context.Context, next *ledger.State) error {
	if err := s.store.Save(ctx, next.Snapshot()); err != nil {
		metrics.StoreErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("save ledger: %w", err)
	}
	s.state = next
	s.observe()
	return nil
}

func (s *LedgerService) observe() {
	b := s.state.Balance()
	metrics.Balance.WithLabelValues("cash").Set(b.Cash.InexactFloat64())
	metrics.Balance.WithLabelValues("online").Set(b.Online.InexactFloat64())
}
