package model

import "github.com/shopspring/decimal"

// DigestStatementKey is the key the cash-flow statement is stored under
// when a digest is serialized.
const DigestStatementKey = "cash_flow_statement"

// AccountSummary is one aggregated account balance in a digest. Cash
// accounts appear once per activity they carry.
type AccountSummary struct {
	Code     string          `json:"code,omitempty" yaml:"code,omitempty"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Role     Role            `json:"role" yaml:"role"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
	Activity Activity        `json:"activity" yaml:"activity"`
}

// Digest carries the aggregated ledger balances into statement derivation
// and accumulates the derived statement. A nil GroupBalances means the
// grouping was never produced.
type Digest struct {
	Accounts          []AccountSummary          `json:"accounts" yaml:"accounts"`
	GroupBalances     map[Group]decimal.Decimal `json:"group_balances,omitempty" yaml:"group_balances,omitempty"`
	CashFlowStatement *CashFlowStatement        `json:"cash_flow_statement,omitempty" yaml:"cash_flow_statement,omitempty"`
}
