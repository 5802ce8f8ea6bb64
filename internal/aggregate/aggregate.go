// Package aggregate groups journal legs into the IO digest consumed by
// statement derivation.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

// Chart resolves account codes to chart entries.
type Chart interface {
	Get(code string) (model.Account, bool)
}

// groupRule says which roles feed a statement group and on which side the
// group balance is measured.
type groupRule struct {
	group model.Group
	basis model.BalanceType
	roles func(model.Role) bool
}

func roleIn(roles ...model.Role) func(model.Role) bool {
	return func(r model.Role) bool {
		for _, x := range roles {
			if r == x {
				return true
			}
		}
		return false
	}
}

// groupRules pairs with the engine's operating sign rules so that a
// balanced journal reconciles to its cash movement. Balance-sheet roles
// that move only against cash (securities, debt, equity, PP&E) are left out
// here and reach the statement through cash activity instead.
var groupRules = []groupRule{
	{model.GroupNetIncome, model.BalanceCredit, model.Role.IsIncomeStatement},
	{model.GroupOpDepreciationAmortization, model.BalanceCredit, roleIn(model.RoleExpenseDepreciation, model.RoleExpenseAmortization)},
	{model.GroupOpInvestmentGains, model.BalanceDebit, roleIn(model.RoleIncomeCapitalGainLoss)},
	{model.GroupOpAccountsReceivable, model.BalanceDebit, roleIn(model.RoleAssetCAReceivables, model.RoleAssetCAUncollectible)},
	{model.GroupOpInventory, model.BalanceDebit, roleIn(model.RoleAssetCAInventory)},
	{model.GroupOpAccountsPayable, model.BalanceCredit, roleIn(model.RoleLiabilityCLAccPayable)},
	{model.GroupOpOtherCurrentAssetsAdj, model.BalanceDebit, roleIn(model.RoleAssetCAPrepaid)},
	{model.GroupOpOtherCurrentLiabilitiesAdj, model.BalanceCredit, roleIn(
		model.RoleLiabilityCLWagesPayable,
		model.RoleLiabilityCLInterestPayable,
		model.RoleLiabilityCLDeferredRevenue,
		model.RoleLiabilityCLOther,
	)},
}

type accountKey struct {
	code     string
	activity model.Activity
}

// Build aggregates the legs dated within period into a digest. Every
// account with activity in the period gets a summary carrying its natural
// balance; cash accounts get one summary per activity. All operating group
// balances are present, zero when nothing moved.
func Build(chart Chart, legs []model.Leg, period Period) (*model.Digest, error) {
	net := make(map[accountKey]decimal.Decimal)
	accts := make(map[string]model.Account)

	for _, leg := range legs {
		if !period.Contains(leg.Date) {
			continue
		}
		acct, ok := chart.Get(leg.AccountCode)
		if !ok {
			return nil, fmt.Errorf("leg %s: unknown account %s", leg.EntryID, leg.AccountCode)
		}
		if !leg.Activity.Valid() {
			return nil, fmt.Errorf("leg %s: unknown activity %q", leg.EntryID, leg.Activity)
		}

		key := accountKey{code: acct.Code}
		if acct.IsCash() {
			key.activity = leg.Activity
		}
		net[key] = net[key].Add(leg.Net())
		accts[acct.Code] = acct
	}

	keys := make([]accountKey, 0, len(net))
	for k := range net {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].code != keys[j].code {
			return keys[i].code < keys[j].code
		}
		return keys[i].activity < keys[j].activity
	})

	d := &model.Digest{GroupBalances: make(map[model.Group]decimal.Decimal, len(groupRules))}
	for _, rule := range groupRules {
		d.GroupBalances[rule.group] = decimal.Zero
	}

	for _, k := range keys {
		acct := accts[k.code]
		d.Accounts = append(d.Accounts, model.AccountSummary{
			Code:     acct.Code,
			Name:     acct.Name,
			Role:     acct.Role,
			Balance:  onSide(net[k], acct.Balance),
			Activity: k.activity,
		})

		for _, rule := range groupRules {
			if rule.roles(acct.Role) {
				d.GroupBalances[rule.group] = d.GroupBalances[rule.group].Add(onSide(net[k], rule.basis))
			}
		}
	}
	return d, nil
}

// CashChange returns the movement of cash over the digest's period: the
// sum of every cash-account summary.
func CashChange(d *model.Digest) decimal.Decimal {
	total := decimal.Zero
	for _, a := range d.Accounts {
		if a.Role == model.RoleAssetCACash {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// onSide measures a debit-minus-credit amount from the given side.
func onSide(debitNet decimal.Decimal, side model.BalanceType) decimal.Decimal {
	if side == model.BalanceCredit {
		return debitNet.Neg()
	}
	return debitNet
}
