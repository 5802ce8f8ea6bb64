package model

// AccountType classifies roles into the five statement families.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// BalanceType is the side on which an account normally increases.
type BalanceType string

const (
	BalanceDebit  BalanceType = "debit"
	BalanceCredit BalanceType = "credit"
)

// Valid reports whether b is debit or credit.
func (b BalanceType) Valid() bool {
	return b == BalanceDebit || b == BalanceCredit
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code       string
	Name       string
	Role       Role
	Balance    BalanceType
	ParentCode string // "" = top-level
}

// IsCash reports whether the account holds cash.
func (a Account) IsCash() bool {
	return a.Role == RoleAssetCACash
}
