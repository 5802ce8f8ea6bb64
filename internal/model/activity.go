package model

import "fmt"

// Activity classifies the cash-flow section a cash movement belongs to.
// The zero value means unclassified, which counts as operating.
type Activity string

const (
	ActivityNone                Activity = ""
	ActivityOperating           Activity = "op"
	ActivityFinancingEquity     Activity = "fin_equity"
	ActivityFinancingDividends  Activity = "fin_dividends"
	ActivityFinancingSTDebt     Activity = "fin_std"
	ActivityFinancingLTDebt     Activity = "fin_ltd"
	ActivityInvestingSecurities Activity = "inv_securities"
	ActivityInvestingPPE        Activity = "inv_ppe"
)

// Category is a cash-flow statement section.
type Category string

const (
	CategoryOperating Category = "OPERATING"
	CategoryFinancing Category = "FINANCING"
	CategoryInvesting Category = "INVESTING"
)

// Categories returns the sections in statement order.
func Categories() []Category {
	return []Category{CategoryOperating, CategoryFinancing, CategoryInvesting}
}

// Activities returns every defined activity, including ActivityNone.
func Activities() []Activity {
	return []Activity{
		ActivityNone,
		ActivityOperating,
		ActivityFinancingEquity,
		ActivityFinancingDividends,
		ActivityFinancingSTDebt,
		ActivityFinancingLTDebt,
		ActivityInvestingSecurities,
		ActivityInvestingPPE,
	}
}

// ParseActivity converts an activity code to an Activity.
func ParseActivity(s string) (Activity, error) {
	a := Activity(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown activity %q", s)
	}
	return a, nil
}

// Valid reports whether a is a defined activity.
func (a Activity) Valid() bool {
	switch a {
	case ActivityNone, ActivityOperating,
		ActivityFinancingEquity, ActivityFinancingDividends, ActivityFinancingSTDebt, ActivityFinancingLTDebt,
		ActivityInvestingSecurities, ActivityInvestingPPE:
		return true
	}
	return false
}

// Category returns the statement section for a. Unclassified and unknown
// activities report operating; callers that care must check Valid first.
func (a Activity) Category() Category {
	switch a {
	case ActivityFinancingEquity, ActivityFinancingDividends, ActivityFinancingSTDebt, ActivityFinancingLTDebt:
		return CategoryFinancing
	case ActivityInvestingSecurities, ActivityInvestingPPE:
		return CategoryInvesting
	default:
		return CategoryOperating
	}
}
