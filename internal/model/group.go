package model

// Group is a statement-group key: either an aggregation bucket produced
// upstream or a cash-flow line item derived from cash activity.
type Group string

const (
	GroupNetIncome                    Group = "GROUP_CFS_NET_INCOME"
	GroupOpDepreciationAmortization   Group = "GROUP_CFS_OP_DEPRECIATION_AMORTIZATION"
	GroupOpInvestmentGains            Group = "GROUP_CFS_OP_INVESTMENT_GAINS"
	GroupOpAccountsReceivable         Group = "GROUP_CFS_OP_ACCOUNTS_RECEIVABLE"
	GroupOpInventory                  Group = "GROUP_CFS_OP_INVENTORY"
	GroupOpAccountsPayable            Group = "GROUP_CFS_OP_ACCOUNTS_PAYABLE"
	GroupOpOtherCurrentAssetsAdj      Group = "GROUP_CFS_OP_OTHER_CURRENT_ASSETS_ADJUSTMENT"
	GroupOpOtherCurrentLiabilitiesAdj Group = "GROUP_CFS_OP_OTHER_CURRENT_LIABILITIES_ADJUSTMENT"
	GroupFinIssuingEquity             Group = "GROUP_CFS_FIN_ISSUING_EQUITY"
	GroupFinDividends                 Group = "GROUP_CFS_FIN_DIVIDENDS"
	GroupFinSTDebtPayments            Group = "GROUP_CFS_FIN_ST_DEBT_PAYMENTS"
	GroupFinLTDebtPayments            Group = "GROUP_CFS_FIN_LT_DEBT_PAYMENTS"
	GroupInvestingSecurities          Group = "GROUP_CFS_INVESTING_SECURITIES"
	GroupInvestingPPE                 Group = "GROUP_CFS_INVESTING_PPE"
)

// OperatingGroups returns the eight group balances an operating section
// requires, in line order.
func OperatingGroups() []Group {
	return []Group{
		GroupNetIncome,
		GroupOpDepreciationAmortization,
		GroupOpInvestmentGains,
		GroupOpAccountsReceivable,
		GroupOpInventory,
		GroupOpAccountsPayable,
		GroupOpOtherCurrentAssetsAdj,
		GroupOpOtherCurrentLiabilitiesAdj,
	}
}

// FinancingGroups returns the financing line items in order.
func FinancingGroups() []Group {
	return []Group{GroupFinIssuingEquity, GroupFinDividends, GroupFinSTDebtPayments, GroupFinLTDebtPayments}
}

// InvestingGroups returns the investing line items in order.
func InvestingGroups() []Group {
	return []Group{GroupInvestingSecurities, GroupInvestingPPE}
}

// Description returns the statement caption for g, or "" for an unknown group.
func (g Group) Description() string {
	switch g {
	case GroupNetIncome:
		return "Net Income"
	case GroupOpDepreciationAmortization:
		return "Depreciation & Amortization of Assets"
	case GroupOpInvestmentGains:
		return "Gain/Loss Sale of Assets"
	case GroupOpAccountsReceivable:
		return "Accounts Receivable"
	case GroupOpInventory:
		return "Inventories"
	case GroupOpAccountsPayable:
		return "Accounts Payable"
	case GroupOpOtherCurrentAssetsAdj:
		return "Other Current Assets"
	case GroupOpOtherCurrentLiabilitiesAdj:
		return "Other Current Liabilities"
	case GroupFinIssuingEquity:
		return "Common Stock, Preferred Stock and Capital Raised"
	case GroupFinDividends:
		return "Dividends Payed Out to Shareholders"
	case GroupFinSTDebtPayments:
		return "Increase/Reduction of Short-Term Debt Principal"
	case GroupFinLTDebtPayments:
		return "Increase/Reduction of Long-Term Debt Principal"
	case GroupInvestingSecurities:
		return "Purchase, Maturity and Sales of Investments & Securities"
	case GroupInvestingPPE:
		return "Addition and Disposition of Property, Plant & Equipment"
	}
	return ""
}
