package cashflow

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

var (
	// ErrMissingRole marks an account summary without a role.
	ErrMissingRole = errors.New("account summary has no role")
	// ErrUnknownActivity marks a cash account whose activity is not a
	// defined classification.
	ErrUnknownActivity = errors.New("unknown activity classification")
)

// MissingGroupingError reports a digest that was never grouped into
// statement-group balances.
type MissingGroupingError struct{}

func (MissingGroupingError) Error() string {
	return "io digest must have group balances for cash flow statement"
}

// MissingGroupBalanceError reports a required group absent from the
// digest's group balances.
type MissingGroupBalanceError struct {
	Group model.Group
}

func (e *MissingGroupBalanceError) Error() string {
	return fmt.Sprintf("group balances missing %s", e.Group)
}

// AccountError describes a malformed account summary in a digest.
type AccountError struct {
	Index int
	Code  string
	Err   error
}

func (e *AccountError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("account %d (%s): %v", e.Index, e.Code, e.Err)
	}
	return fmt.Sprintf("account %d: %v", e.Index, e.Err)
}

func (e *AccountError) Unwrap() error { return e.Err }

// TieOutError reports net cash that does not match the cash movement on
// the balance sheet.
type TieOutError struct {
	NetCash    decimal.Decimal
	CashChange decimal.Decimal
}

func (e *TieOutError) Error() string {
	return fmt.Sprintf("net cash %s does not tie to cash movement %s (difference %s)",
		e.NetCash.StringFixed(2), e.CashChange.StringFixed(2), e.Difference().StringFixed(2))
}

// Difference returns net cash minus cash movement.
func (e *TieOutError) Difference() decimal.Decimal {
	return e.NetCash.Sub(e.CashChange)
}
