package journal

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountLookup answers questions about the chart of accounts.
type AccountLookup interface {
	Exists(code string) bool
	IsCash(code string) bool
}

var legIDPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-\d{3}[a-z]+$`)

// ValidateLegs enforces 7 invariants on a set of journal legs for a given month.
func ValidateLegs(legs []model.Leg, accounts AccountLookup, year, month int) []ValidationError {
	var errs []ValidationError

	// Group legs by entry.
	groups := make(map[string][]model.Leg)
	var groupOrder []string
	for _, leg := range legs {
		g := leg.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], leg)
	}

	// Invariant 1: Entry groups balance (sum(debits) == sum(credits) per group).
	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, leg := range groups[g] {
			totalDebit = totalDebit.Add(leg.Debit)
			totalCredit = totalCredit.Add(leg.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	hundred := decimal.NewFromInt(100)
	for _, leg := range legs {
		// Invariant 2: Exactly one of debit/credit per row.
		hasDebit := !leg.Debit.IsZero()
		hasCredit := !leg.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     leg.EntryID,
				Description: "leg must have exactly one of debit or credit",
			})
		}

		// Invariant 3: Valid account references.
		known := accounts.Exists(leg.AccountCode)
		if !known {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("unknown account %s", leg.AccountCode),
			})
		}

		// Invariant 4: Date within month.
		if leg.Date.Year() != year || int(leg.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", leg.Date.Format(dateFormat), year, month),
			})
		}

		// Invariant 5: Activity classifies cash movements only.
		if known && leg.Activity != model.ActivityNone && !accounts.IsCash(leg.AccountCode) {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("activity %q on non-cash account %s", leg.Activity, leg.AccountCode),
			})
		}

		// Invariant 6: Exact decimals, no more than 2 decimal places.
		for _, amt := range []decimal.Decimal{leg.Debit, leg.Credit} {
			if !amt.IsZero() && !amt.Mul(hundred).Equal(amt.Mul(hundred).Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   6,
					EntryID:     leg.EntryID,
					Description: fmt.Sprintf("amount %s has more than 2 decimal places", amt),
				})
			}
		}

		// Invariant 7: Leg IDs look like YYYY-MM-NNNx and name their month.
		m := legIDPattern.FindStringSubmatch(leg.EntryID)
		if m == nil || m[1] != fmt.Sprintf("%04d", year) || m[2] != fmt.Sprintf("%02d", month) {
			errs = append(errs, ValidationError{
				Invariant:   7,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("leg ID must be %04d-%02d-NNN plus a leg letter", year, month),
			})
		}
	}

	return errs
}
