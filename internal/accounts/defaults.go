package accounts

import "github.com/cleared-dev/statements/internal/model"

// DefaultChart returns the default chart of accounts for an entity type.
// Every call returns a fresh slice; callers may modify it freely.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "corporation":
		return corporationChart()
	default:
		return corporationChart()
	}
}

// corporationChart classifies every line on a balance sheet, income
// statement and cash-flow statement.
func corporationChart() []model.Account {
	return []model.Account{
		{Code: "1010", Name: "Cash", Role: model.RoleAssetCACash, Balance: model.BalanceDebit},
		{Code: "1050", Name: "Short Term Investments", Role: model.RoleAssetCAMktSecurities, Balance: model.BalanceDebit},
		{Code: "1100", Name: "Accounts Receivable", Role: model.RoleAssetCAReceivables, Balance: model.BalanceDebit},
		{Code: "1110", Name: "Uncollectibles", Role: model.RoleAssetCAUncollectible, Balance: model.BalanceCredit},
		{Code: "1200", Name: "Inventory", Role: model.RoleAssetCAInventory, Balance: model.BalanceDebit},
		{Code: "1300", Name: "Prepaid Expenses", Role: model.RoleAssetCAPrepaid, Balance: model.BalanceDebit},
		{Code: "1510", Name: "Notes Receivable", Role: model.RoleAssetLTINotesReceivable, Balance: model.BalanceDebit},
		{Code: "1520", Name: "Land", Role: model.RoleAssetLTILand, Balance: model.BalanceDebit},
		{Code: "1530", Name: "Securities", Role: model.RoleAssetLTISecurities, Balance: model.BalanceDebit},
		{Code: "1610", Name: "Buildings", Role: model.RoleAssetPPEBuildings, Balance: model.BalanceDebit},
		{Code: "1611", Name: "Less: Buildings Accumulated Depreciation", Role: model.RoleAssetPPEBuildingsAccumDepr, Balance: model.BalanceCredit},
		{Code: "1620", Name: "Plant", Role: model.RoleAssetPPEPlant, Balance: model.BalanceDebit},
		{Code: "1621", Name: "Less: Plant Accumulated Depreciation", Role: model.RoleAssetPPEPlantAccumDepr, Balance: model.BalanceCredit},
		{Code: "1630", Name: "Equipment", Role: model.RoleAssetPPEEquipment, Balance: model.BalanceDebit},
		{Code: "1631", Name: "Less: Equipment Accumulated Depreciation", Role: model.RoleAssetPPEEquipmentAccumDepr, Balance: model.BalanceCredit},
		{Code: "1640", Name: "Vehicles", Role: model.RoleAssetPPEPlant, Balance: model.BalanceDebit},
		{Code: "1641", Name: "Less: Vehicles Accumulated Depreciation", Role: model.RoleAssetPPEPlantAccumDepr, Balance: model.BalanceCredit},
		{Code: "1650", Name: "Furniture & Fixtures", Role: model.RoleAssetPPEPlant, Balance: model.BalanceDebit},
		{Code: "1651", Name: "Less: Furniture & Fixtures Accumulated Depreciation", Role: model.RoleAssetPPEPlantAccumDepr, Balance: model.BalanceCredit},
		{Code: "1810", Name: "Goodwill", Role: model.RoleAssetIntangible, Balance: model.BalanceDebit},
		{Code: "1820", Name: "Intellectual Property", Role: model.RoleAssetIntangible, Balance: model.BalanceDebit},
		{Code: "1830", Name: "Less: Intangible Assets Accumulated Amortization", Role: model.RoleAssetIntangibleAccumAmort, Balance: model.BalanceCredit, ParentCode: "1820"},
		{Code: "1910", Name: "Securities Unrealized Gains/Losses", Role: model.RoleAssetAdjustment, Balance: model.BalanceDebit},
		{Code: "1920", Name: "PPE Unrealized Gains/Losses", Role: model.RoleAssetAdjustment, Balance: model.BalanceDebit},
		{Code: "2010", Name: "Accounts Payable", Role: model.RoleLiabilityCLAccPayable, Balance: model.BalanceCredit},
		{Code: "2020", Name: "Wages Payable", Role: model.RoleLiabilityCLWagesPayable, Balance: model.BalanceCredit},
		{Code: "2030", Name: "Interest Payable", Role: model.RoleLiabilityCLInterestPayable, Balance: model.BalanceCredit},
		{Code: "2040", Name: "Short-Term Notes Payable", Role: model.RoleLiabilityCLSTNotesPayable, Balance: model.BalanceCredit},
		{Code: "2050", Name: "Current Maturities LT Debt", Role: model.RoleLiabilityCLLTDMaturities, Balance: model.BalanceCredit},
		{Code: "2060", Name: "Deferred Revenues", Role: model.RoleLiabilityCLDeferredRevenue, Balance: model.BalanceCredit},
		{Code: "2070", Name: "Other Payables", Role: model.RoleLiabilityCLOther, Balance: model.BalanceCredit},
		{Code: "2110", Name: "Long Term Notes Payable", Role: model.RoleLiabilityLTLNotesPayable, Balance: model.BalanceCredit},
		{Code: "2120", Name: "Bonds Payable", Role: model.RoleLiabilityLTLBondsPayable, Balance: model.BalanceCredit},
		{Code: "2130", Name: "Mortgage Payable", Role: model.RoleLiabilityLTLMortgagePayable, Balance: model.BalanceCredit},
		{Code: "3010", Name: "Capital Account 1", Role: model.RoleEquityCapital, Balance: model.BalanceCredit},
		{Code: "3020", Name: "Capital Account 2", Role: model.RoleEquityCapital, Balance: model.BalanceCredit},
		{Code: "3030", Name: "Capital Account 3", Role: model.RoleEquityCapital, Balance: model.BalanceCredit},
		{Code: "3110", Name: "Common Stock", Role: model.RoleEquityCommonStock, Balance: model.BalanceCredit},
		{Code: "3120", Name: "Preferred Stock", Role: model.RoleEquityPreferredStock, Balance: model.BalanceCredit},
		{Code: "3910", Name: "Available for Sale", Role: model.RoleEquityAdjustment, Balance: model.BalanceCredit},
		{Code: "3920", Name: "PPE Unrealized Gains/Losses", Role: model.RoleEquityAdjustment, Balance: model.BalanceCredit},
		{Code: "3930", Name: "Dividends & Distributions", Role: model.RoleEquityDividends, Balance: model.BalanceDebit},
		{Code: "4010", Name: "Sales Income", Role: model.RoleIncomeOperational, Balance: model.BalanceCredit},
		{Code: "4020", Name: "Investing Income", Role: model.RoleIncomeInvesting, Balance: model.BalanceCredit},
		{Code: "4030", Name: "Interest Income", Role: model.RoleIncomeInterest, Balance: model.BalanceCredit},
		{Code: "4040", Name: "Capital Gain/Loss Income", Role: model.RoleIncomeCapitalGainLoss, Balance: model.BalanceCredit},
		{Code: "4050", Name: "Other Income", Role: model.RoleIncomeOther, Balance: model.BalanceCredit},
		{Code: "5010", Name: "Cost of Goods Sold", Role: model.RoleCOGS, Balance: model.BalanceDebit},
		{Code: "6010", Name: "Advertising", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6020", Name: "Amortization", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6030", Name: "Auto Expense", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6040", Name: "Bad Debt", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6050", Name: "Bank Charges", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6060", Name: "Commission Expense", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6080", Name: "Employee Benefits", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6090", Name: "Freight", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6110", Name: "Gifts", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6120", Name: "Insurance", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6140", Name: "Professional Fees", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6150", Name: "License Expense", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6170", Name: "Maintenance Expense", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6180", Name: "Meals & Entertainment", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6190", Name: "Office Expense", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6220", Name: "Printing", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6230", Name: "Postage", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6240", Name: "Rent", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6250", Name: "Maintenance & Repairs", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6251", Name: "Maintenance", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6252", Name: "Repairs", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6253", Name: "HOA", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6254", Name: "Snow Removal", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6255", Name: "Lawn Care", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6260", Name: "Salaries", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6270", Name: "Supplies", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6290", Name: "Utilities", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6292", Name: "Sewer", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6293", Name: "Gas", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6294", Name: "Garbage", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6295", Name: "Electricity", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6300", Name: "Property Management", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6400", Name: "Vacancy", Role: model.RoleExpenseRegular, Balance: model.BalanceDebit},
		{Code: "6070", Name: "Depreciation Expense", Role: model.RoleExpenseDepreciation, Balance: model.BalanceDebit},
		{Code: "6075", Name: "Amortization Expense", Role: model.RoleExpenseAmortization, Balance: model.BalanceDebit},
		{Code: "6130", Name: "Interest Expense", Role: model.RoleExpenseInterest, Balance: model.BalanceDebit},
		{Code: "6210", Name: "Payroll Taxes", Role: model.RoleExpenseTaxes, Balance: model.BalanceDebit},
		{Code: "6280", Name: "Taxes", Role: model.RoleExpenseTaxes, Balance: model.BalanceDebit},
		{Code: "6500", Name: "Misc. Expense", Role: model.RoleExpenseOther, Balance: model.BalanceDebit},
	}
}
