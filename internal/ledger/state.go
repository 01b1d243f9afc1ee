// Package ledger holds the in-memory balances and transaction history and the
// three intents that mutate them. It does no I/O; persistence is layered on top
// by the services package.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

// DefaultDateLayout renders timestamps the way an en-US browser locale does.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

var (
	ErrUnknownKind   = errors.New("unknown transaction kind")
	ErrUnknownMethod = errors.New("unknown transaction method")
)

// State is not safe for concurrent use.
type State struct {
	balance models.Balance
	txns    []models.Transaction
	layout  string
}

func New(layout string) *State {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &State{layout: layout}
}

// FromSnapshot rebuilds a State from persisted data.
func FromSnapshot(snap models.Snapshot, layout string) *State {
	s := New(layout)
	s.balance = snap.Balance()
	s.txns = snap.Clone().Transactions
	return s
}

func (s *State) Balance() models.Balance { return s.balance }

func (s *State) Len() int { return len(s.txns) }

// Snapshot copies the state out; the result never aliases s.
func (s *State) Snapshot() models.Snapshot {
	return models.Snapshot{
		Cash:         s.balance.Cash,
		Online:       s.balance.Online,
		Transactions: append([]models.Transaction{}, s.txns...),
	}
}

func (s *State) Clone() *State {
	return &State{
		balance: s.balance,
		txns:    append([]models.Transaction(nil), s.txns...),
		layout:  s.layout,
	}
}

// SetInitialAmount is a destructive reset: cash becomes the parsed value (0
// when unparsable), online becomes 0 and the ledger is emptied. It returns the
// amount applied.
func (s *State) SetInitialAmount(value string) decimal.Decimal {
	amount := ParseOrZero(value)
	s.balance = models.Balance{Cash: amount, Online: decimal.Zero}
	s.txns = nil
	return amount
}

// AddTransaction records a credit (KindAdd) or debit (KindSpend) against one
// account. An empty reason or a zero / unparsable amount is a silent no-op and
// reports recorded == false. Only unknown kind or method values return an error.
func (s *State) AddTransaction(kind models.Kind, method models.Method, reason, amount string, now time.Time) (tx models.Transaction, recorded bool, err error) {
	if !kind.Valid() {
		return models.Transaction{}, false, ErrUnknownKind
	}
	if !method.Valid() {
		return models.Transaction{}, false, ErrUnknownMethod
	}

	parsed, ok := ParseAmount(amount)
	if !ok || parsed.IsZero() || reason == "" {
		return models.Transaction{}, false, nil
	}

	signed := parsed
	if kind == models.KindSpend {
		signed = parsed.Neg()
	}

	tx = models.Transaction{
		Reason: reason,
		Amount: signed,
		Method: method,
		Date:   now.Format(s.layout),
	}
	s.txns = append(s.txns, tx)
	s.balance = s.balance.Add(method, signed)
	return tx, true, nil
}

// Clear returns the state to its empty initial condition.
func (s *State) Clear() {
	s.balance = models.Balance{}
	s.txns = nil
}
