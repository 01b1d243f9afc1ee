package models

import (
	"github.com/shopspring/decimal"
)

// Balance holds the two account balances. Either may go negative.
type Balance struct {
	Cash   decimal.Decimal `json:"cash"`
	Online decimal.Decimal `json:"online"`
}

// Total is computed on demand and never stored.
func (b Balance) Total() decimal.Decimal { return b.Cash.Add(b.Online) }

// Add routes delta to the account named by m.
func (b Balance) Add(m Method, delta decimal.Decimal) Balance {
	if m == MethodCash {
		b.Cash = b.Cash.Add(delta)
	} else {
		b.Online = b.Online.Add(delta)
	}
	return b
}
