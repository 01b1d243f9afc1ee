package models

import "github.com/shopspring/decimal"

// Snapshot is the entire durable state: both balances and the ordered ledger.
type Snapshot struct {
	Cash         decimal.Decimal
	Online       decimal.Decimal
	Transactions []Transaction
}

func (s Snapshot) Balance() Balance { return Balance{Cash: s.Cash, Online: s.Online} }

func (s Snapshot) Total() decimal.Decimal { return s.Cash.Add(s.Online) }

// Clone returns a copy whose transaction slice does not alias s.
func (s Snapshot) Clone() Snapshot {
	txs := make([]Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	return Snapshot{Cash: s.Cash, Online: s.Online, Transactions: txs}
}
