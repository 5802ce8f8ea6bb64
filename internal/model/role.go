package model

import "fmt"

// Role is the semantic tag every ledger account carries.
type Role string

const (
	RoleAssetCACash          Role = "asset_ca_cash"
	RoleAssetCAMktSecurities Role = "asset_ca_mkt_sec"
	RoleAssetCAReceivables   Role = "asset_ca_recv"
	RoleAssetCAUncollectible Role = "asset_ca_uncoll"
	RoleAssetCAInventory     Role = "asset_ca_inv"
	RoleAssetCAPrepaid       Role = "asset_ca_prepaid"

	RoleAssetLTINotesReceivable Role = "asset_lti_notes"
	RoleAssetLTILand            Role = "asset_lti_land"
	RoleAssetLTISecurities      Role = "asset_lti_sec"

	RoleAssetPPEBuildings          Role = "asset_ppe_build"
	RoleAssetPPEBuildingsAccumDepr Role = "asset_ppe_build_accum_depr"
	RoleAssetPPEPlant              Role = "asset_ppe_plant"
	RoleAssetPPEPlantAccumDepr     Role = "asset_ppe_plant_depr"
	RoleAssetPPEEquipment          Role = "asset_ppe_equip"
	RoleAssetPPEEquipmentAccumDepr Role = "asset_ppe_equip_accum_depr"

	RoleAssetIntangible           Role = "asset_ia"
	RoleAssetIntangibleAccumAmort Role = "asset_ia_accum_amort"
	RoleAssetAdjustment           Role = "asset_adjustment"

	RoleLiabilityCLAccPayable      Role = "lia_cl_acc_payable"
	RoleLiabilityCLWagesPayable    Role = "lia_cl_wages_payable"
	RoleLiabilityCLInterestPayable Role = "lia_cl_int_payable"
	RoleLiabilityCLSTNotesPayable  Role = "lia_cl_st_notes_payable"
	RoleLiabilityCLLTDMaturities   Role = "lia_cl_ltd_mat"
	RoleLiabilityCLDeferredRevenue Role = "lia_cl_def_rev"
	RoleLiabilityCLOther           Role = "lia_cl_other"

	RoleLiabilityLTLNotesPayable    Role = "lia_ltl_notes"
	RoleLiabilityLTLBondsPayable    Role = "lia_ltl_bonds"
	RoleLiabilityLTLMortgagePayable Role = "lia_ltl_mortgage"

	RoleEquityCapital        Role = "eq_capital"
	RoleEquityCommonStock    Role = "eq_stock_common"
	RoleEquityPreferredStock Role = "eq_stock_preferred"
	RoleEquityAdjustment     Role = "eq_adjustment"
	RoleEquityDividends      Role = "eq_dividends"

	RoleIncomeOperational     Role = "in_operational"
	RoleIncomeInvesting       Role = "in_passive"
	RoleIncomeInterest        Role = "in_interest"
	RoleIncomeCapitalGainLoss Role = "in_gain_loss"
	RoleIncomeOther           Role = "in_other"

	RoleCOGS Role = "cogs_regular"

	RoleExpenseRegular      Role = "ex_regular"
	RoleExpenseDepreciation Role = "ex_depreciation"
	RoleExpenseAmortization Role = "ex_amortization"
	RoleExpenseInterest     Role = "ex_interest"
	RoleExpenseTaxes        Role = "ex_taxes"
	RoleExpenseOther        Role = "ex_other"
)

type roleInfo struct {
	label       string
	typ         AccountType
	balance     BalanceType
	defaultCode string
}

// roleTable is ordered the way roles appear on the statements.
var roleTable = []struct {
	role Role
	info roleInfo
}{
	{RoleAssetCACash, roleInfo{"Current Assets - Cash", AccountTypeAsset, BalanceDebit, "1010"}},
	{RoleAssetCAMktSecurities, roleInfo{"Current Assets - Marketable Securities", AccountTypeAsset, BalanceDebit, "1050"}},
	{RoleAssetCAReceivables, roleInfo{"Current Assets - Receivables", AccountTypeAsset, BalanceDebit, "1100"}},
	{RoleAssetCAUncollectible, roleInfo{"Current Assets - Uncollectibles", AccountTypeAsset, BalanceCredit, "1110"}},
	{RoleAssetCAInventory, roleInfo{"Current Assets - Inventory", AccountTypeAsset, BalanceDebit, "1200"}},
	{RoleAssetCAPrepaid, roleInfo{"Current Assets - Prepaid", AccountTypeAsset, BalanceDebit, "1300"}},

	{RoleAssetLTINotesReceivable, roleInfo{"Long Term Investments - Notes Receivable", AccountTypeAsset, BalanceDebit, "1510"}},
	{RoleAssetLTILand, roleInfo{"Long Term Investments - Land", AccountTypeAsset, BalanceDebit, "1520"}},
	{RoleAssetLTISecurities, roleInfo{"Long Term Investments - Securities", AccountTypeAsset, BalanceDebit, "1530"}},

	{RoleAssetPPEBuildings, roleInfo{"PPE - Buildings", AccountTypeAsset, BalanceDebit, "1610"}},
	{RoleAssetPPEBuildingsAccumDepr, roleInfo{"PPE - Buildings Accumulated Depreciation", AccountTypeAsset, BalanceCredit, "1611"}},
	{RoleAssetPPEPlant, roleInfo{"PPE - Plant", AccountTypeAsset, BalanceDebit, "1620"}},
	{RoleAssetPPEPlantAccumDepr, roleInfo{"PPE - Plant Accumulated Depreciation", AccountTypeAsset, BalanceCredit, "1621"}},
	{RoleAssetPPEEquipment, roleInfo{"PPE - Equipment", AccountTypeAsset, BalanceDebit, "1630"}},
	{RoleAssetPPEEquipmentAccumDepr, roleInfo{"PPE - Equipment Accumulated Depreciation", AccountTypeAsset, BalanceCredit, "1631"}},

	{RoleAssetIntangible, roleInfo{"Intangible Assets", AccountTypeAsset, BalanceDebit, "1810"}},
	{RoleAssetIntangibleAccumAmort, roleInfo{"Intangible Assets - Accumulated Amortization", AccountTypeAsset, BalanceCredit, "1830"}},
	{RoleAssetAdjustment, roleInfo{"Other Assets - Adjustments", AccountTypeAsset, BalanceDebit, "1910"}},

	{RoleLiabilityCLAccPayable, roleInfo{"Current Liabilities - Accounts Payable", AccountTypeLiability, BalanceCredit, "2010"}},
	{RoleLiabilityCLWagesPayable, roleInfo{"Current Liabilities - Wages Payable", AccountTypeLiability, BalanceCredit, "2020"}},
	{RoleLiabilityCLInterestPayable, roleInfo{"Current Liabilities - Interest Payable", AccountTypeLiability, BalanceCredit, "2030"}},
	{RoleLiabilityCLSTNotesPayable, roleInfo{"Current Liabilities - Short Term Notes Payable", AccountTypeLiability, BalanceCredit, "2040"}},
	{RoleLiabilityCLLTDMaturities, roleInfo{"Current Liabilities - Current Maturities of Long Term Debt", AccountTypeLiability, BalanceCredit, "2050"}},
	{RoleLiabilityCLDeferredRevenue, roleInfo{"Current Liabilities - Deferred Revenue", AccountTypeLiability, BalanceCredit, "2060"}},
	{RoleLiabilityCLOther, roleInfo{"Current Liabilities - Other", AccountTypeLiability, BalanceCredit, "2070"}},

	{RoleLiabilityLTLNotesPayable, roleInfo{"Long Term Liabilities - Notes Payable", AccountTypeLiability, BalanceCredit, "2110"}},
	{RoleLiabilityLTLBondsPayable, roleInfo{"Long Term Liabilities - Bonds Payable", AccountTypeLiability, BalanceCredit, "2120"}},
	{RoleLiabilityLTLMortgagePayable, roleInfo{"Long Term Liabilities - Mortgage Payable", AccountTypeLiability, BalanceCredit, "2130"}},

	{RoleEquityCapital, roleInfo{"Capital", AccountTypeEquity, BalanceCredit, "3010"}},
	{RoleEquityCommonStock, roleInfo{"Common Stock", AccountTypeEquity, BalanceCredit, "3110"}},
	{RoleEquityPreferredStock, roleInfo{"Preferred Stock", AccountTypeEquity, BalanceCredit, "3120"}},
	{RoleEquityAdjustment, roleInfo{"Other Equity Adjustments", AccountTypeEquity, BalanceCredit, "3910"}},
	{RoleEquityDividends, roleInfo{"Dividends & Distributions to Shareholders", AccountTypeEquity, BalanceDebit, "3930"}},

	{RoleIncomeOperational, roleInfo{"Operational Income", AccountTypeRevenue, BalanceCredit, "4010"}},
	{RoleIncomeInvesting, roleInfo{"Investing/Passive Income", AccountTypeRevenue, BalanceCredit, "4020"}},
	{RoleIncomeInterest, roleInfo{"Interest Income", AccountTypeRevenue, BalanceCredit, "4030"}},
	{RoleIncomeCapitalGainLoss, roleInfo{"Capital Gain/Loss Income", AccountTypeRevenue, BalanceCredit, "4040"}},
	{RoleIncomeOther, roleInfo{"Other Income", AccountTypeRevenue, BalanceCredit, "4050"}},

	{RoleCOGS, roleInfo{"Cost of Goods Sold", AccountTypeExpense, BalanceDebit, "5010"}},

	{RoleExpenseRegular, roleInfo{"Regular Expense", AccountTypeExpense, BalanceDebit, "6010"}},
	{RoleExpenseDepreciation, roleInfo{"Depreciation Expense", AccountTypeExpense, BalanceDebit, "6070"}},
	{RoleExpenseAmortization, roleInfo{"Amortization Expense", AccountTypeExpense, BalanceDebit, "6075"}},
	{RoleExpenseInterest, roleInfo{"Interest Expense", AccountTypeExpense, BalanceDebit, "6130"}},
	{RoleExpenseTaxes, roleInfo{"Tax Expense", AccountTypeExpense, BalanceDebit, "6280"}},
	{RoleExpenseOther, roleInfo{"Other Expense", AccountTypeExpense, BalanceDebit, "6500"}},
}

var roleIndex = func() map[Role]roleInfo {
	m := make(map[Role]roleInfo, len(roleTable))
	for _, r := range roleTable {
		m[r.role] = r.info
	}
	return m
}()

// Roles returns every defined role in statement order.
func Roles() []Role {
	out := make([]Role, len(roleTable))
	for i, r := range roleTable {
		out[i] = r.role
	}
	return out
}

// ParseRole converts a role code to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is a defined role.
func (r Role) Valid() bool {
	_, ok := roleIndex[r]
	return ok
}

// Label returns the human-readable role name.
func (r Role) Label() string { return roleIndex[r].label }

// Type returns the statement family of the role.
func (r Role) Type() AccountType { return roleIndex[r].typ }

// NormalBalance returns the side on which accounts with this role increase.
func (r Role) NormalBalance() BalanceType { return roleIndex[r].balance }

// DefaultCode returns the display code used for the role in the default chart.
func (r Role) DefaultCode() string { return roleIndex[r].defaultCode }

// IsIncomeStatement reports whether r rolls into net income.
func (r Role) IsIncomeStatement() bool {
	t := r.Type()
	return t == AccountTypeRevenue || t == AccountTypeExpense
}
