// Package cashflow derives a cash-flow statement from an IO digest.
//
// Operating activities are reconstructed indirectly from statement-group
// balances. Financing and investing activities come from cash-account
// balances split by activity classification.
package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

type sign int

const (
	asIs    sign = 1
	negated sign = -1
)

// operatingLines maps each required group balance to its cash effect.
// Asset-side changes and non-cash charges are inverted.
var operatingLines = []struct {
	group model.Group
	sign  sign
}{
	{model.GroupNetIncome, asIs},
	{model.GroupOpDepreciationAmortization, negated},
	{model.GroupOpInvestmentGains, asIs},
	{model.GroupOpAccountsReceivable, negated},
	{model.GroupOpInventory, negated},
	{model.GroupOpAccountsPayable, asIs},
	{model.GroupOpOtherCurrentAssetsAdj, negated},
	{model.GroupOpOtherCurrentLiabilitiesAdj, asIs},
}

type activityLine struct {
	group    model.Group
	activity model.Activity
}

var financingLines = []activityLine{
	{model.GroupFinIssuingEquity, model.ActivityFinancingEquity},
	{model.GroupFinDividends, model.ActivityFinancingDividends},
	{model.GroupFinSTDebtPayments, model.ActivityFinancingSTDebt},
	{model.GroupFinLTDebtPayments, model.ActivityFinancingLTDebt},
}

var investingLines = []activityLine{
	{model.GroupInvestingSecurities, model.ActivityInvestingSecurities},
	{model.GroupInvestingPPE, model.ActivityInvestingPPE},
}

// Digest validates d, derives its cash-flow statement and stores it in
// d.CashFlowStatement. It returns d itself, not a copy. On error d is left
// untouched.
func Digest(d *model.Digest) (*model.Digest, error) {
	if d == nil || d.GroupBalances == nil {
		return d, MissingGroupingError{}
	}

	stmt, err := Build(d.GroupBalances, d.Accounts)
	if err != nil {
		return d, err
	}
	d.CashFlowStatement = stmt
	return d, nil
}

// Build derives a statement from group balances and account summaries.
// Accounts other than cash are ignored.
func Build(balances map[model.Group]decimal.Decimal, accounts []model.AccountSummary) (*model.CashFlowStatement, error) {
	operating, err := Operating(balances)
	if err != nil {
		return nil, err
	}

	cash, err := CashAccounts(accounts)
	if err != nil {
		return nil, err
	}

	return model.NewCashFlowStatement(operating, Financing(cash), Investing(cash)), nil
}

// Operating reclassifies the eight required group balances into operating
// line items.
func Operating(balances map[model.Group]decimal.Decimal) (model.Section, error) {
	section := make(model.Section, len(operatingLines))
	for _, line := range operatingLines {
		bal, ok := balances[line.group]
		if !ok {
			return nil, &MissingGroupBalanceError{Group: line.group}
		}
		if line.sign == negated {
			bal = bal.Neg()
		}
		section[line.group] = model.LineItem{
			Description: line.group.Description(),
			Balance:     bal,
		}
	}
	return section, nil
}

// CashAccounts returns the cash-role subset of accounts, in input order.
// Every account must carry a role, and every cash account a defined
// activity; unclassified cash is operating.
func CashAccounts(accounts []model.AccountSummary) ([]model.AccountSummary, error) {
	var cash []model.AccountSummary
	for i, a := range accounts {
		if a.Role == "" {
			return nil, &AccountError{Index: i, Code: a.Code, Err: ErrMissingRole}
		}
		if a.Role != model.RoleAssetCACash {
			continue
		}
		if !a.Activity.Valid() {
			return nil, &AccountError{Index: i, Code: a.Code, Err: fmt.Errorf("%w %q", ErrUnknownActivity, a.Activity)}
		}
		cash = append(cash, a)
	}
	return cash, nil
}

// Financing sums cash balances into the four financing line items.
func Financing(cash []model.AccountSummary) model.Section {
	return sumByActivity(cash, financingLines)
}

// Investing sums cash balances into the two investing line items.
func Investing(cash []model.AccountSummary) model.Section {
	return sumByActivity(cash, investingLines)
}

func sumByActivity(cash []model.AccountSummary, lines []activityLine) model.Section {
	section := make(model.Section, len(lines))
	for _, line := range lines {
		total := decimal.Zero
		for _, a := range cash {
			if a.Activity == line.activity {
				total = total.Add(a.Balance)
			}
		}
		section[line.group] = model.LineItem{
			Description: line.group.Description(),
			Balance:     total,
		}
	}
	return section
}

// Tie checks the statement's net cash against the cash movement reported
// by the balance sheet for the same period.
func Tie(stmt *model.CashFlowStatement, cashChange, tolerance decimal.Decimal) error {
	if stmt.NetCash.Sub(cashChange).Abs().GreaterThan(tolerance.Abs()) {
		return &TieOutError{NetCash: stmt.NetCash, CashChange: cashChange}
	}
	return nil
}
