package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/baharkarakas/expense-tracker/internal/ledger"
	"github.com/baharkarakas/expense-tracker/internal/models"
)

// Keys of the three persisted entries.
const (
	KeyCash         = "cash"
	KeyOnline       = "online"
	KeyTransactions = "transactions"
)

// SnapshotStore maps a Snapshot onto three independent KV entries. Damaged
// entries never fail a Load: numbers fall back to 0 and the list to empty.
type SnapshotStore struct {
	kv KV
}

func NewSnapshotStore(kv KV) *SnapshotStore { return &SnapshotStore{kv: kv} }

func (s *SnapshotStore) Load(ctx context.Context) (models.Snapshot, error) {
	snap := models.Snapshot{Transactions: []models.Transaction{}}

	cash, found, err := s.kv.Get(ctx, KeyCash)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load %s: %w", KeyCash, err)
	}
	if found {
		snap.Cash = ledger.ParseOrZero(cash)
	}

	online, found, err := s.kv.Get(ctx, KeyOnline)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load %s: %w", KeyOnline, err)
	}
	if found {
		snap.Online = ledger.ParseOrZero(online)
	}

	raw, found, err := s.kv.Get(ctx, KeyTransactions)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load %s: %w", KeyTransactions, err)
	}
	if found {
		var txs []models.Transaction
		if err := json.Unmarshal([]byte(raw), &txs); err == nil && txs != nil {
			snap.Transactions = txs
		}
	}
	return snap, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snap models.Snapshot) error {
	txs, err := EncodeTransactions(snap.Transactions)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyTransactions, err)
	}
	err = s.kv.SetMany(ctx, map[string]string{
		KeyCash:         snap.Cash.String(),
		KeyOnline:       snap.Online.String(),
		KeyTransactions: txs,
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

// EncodeTransactions renders the ledger list without HTML escaping, so reasons
// like "R&D" are stored verbatim. A nil list encodes as [].
func EncodeTransactions(txs []models.Transaction) (string, error) {
	if txs == nil {
		txs = []models.Transaction{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(txs); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

var _ Snapshots = (*SnapshotStore)(nil)
