package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Leg is a single row in journal.csv (one side of a double-entry).
type Leg struct {
	EntryID     string // "YYYY-MM-NNNx" where x = a,b,c...
	Date        time.Time
	AccountCode string
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Activity    Activity        // cash legs only
	Reference   string
	Notes       string
}

// EntryGroup returns the base entry ID (without leg suffix).
// "2025-01-001a" -> "2025-01-001"
func (l Leg) EntryGroup() string {
	i := len(l.EntryID)
	for i > 0 && l.EntryID[i-1] >= 'a' && l.EntryID[i-1] <= 'z' {
		i--
	}
	return l.EntryID[:i]
}

// Net returns debit minus credit for the leg.
func (l Leg) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}
