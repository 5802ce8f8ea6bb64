package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCategory(t *testing.T) {
	tests := []struct {
		activity Activity
		want     Category
	}{
		{ActivityNone, CategoryOperating},
		{ActivityOperating, CategoryOperating},
		{ActivityFinancingEquity, CategoryFinancing},
		{ActivityFinancingDividends, CategoryFinancing},
		{ActivityFinancingSTDebt, CategoryFinancing},
		{ActivityFinancingLTDebt, CategoryFinancing},
		{ActivityInvestingSecurities, CategoryInvesting},
		{ActivityInvestingPPE, CategoryInvesting},
	}
	require.Len(t, tests, len(Activities()), "every activity needs a case")
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.activity.Category(), "Category(%q)", tt.activity)
	}
}

func TestParseActivity(t *testing.T) {
	for _, a := range Activities() {
		got, err := ParseActivity(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseActivity("fin_crowdfunding")
	require.Error(t, err)
	assert.False(t, Activity("fin_crowdfunding").Valid())
}

func TestGroupDescriptions(t *testing.T) {
	var all []Group
	all = append(all, OperatingGroups()...)
	all = append(all, FinancingGroups()...)
	all = append(all, InvestingGroups()...)
	require.Len(t, all, 14)

	seen := make(map[Group]bool)
	for _, g := range all {
		assert.False(t, seen[g], "group %q listed twice", g)
		seen[g] = true
		assert.NotEmpty(t, g.Description(), "group %q has no description", g)
	}

	assert.Empty(t, Group("GROUP_CFS_TYPO").Description())
}
