package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSectionTotal(t *testing.T) {
	s := Section{
		GroupFinIssuingEquity: {Description: "equity", Balance: dec("500")},
		GroupFinDividends:     {Description: "dividends", Balance: dec("-100.25")},
	}
	assert.True(t, s.Total().Equal(dec("399.75")))
	assert.True(t, Section{}.Total().IsZero())
	assert.True(t, Section(nil).Total().IsZero())
}

func TestNewCashFlowStatementReconciles(t *testing.T) {
	op := Section{GroupNetIncome: {Balance: dec("1080")}}
	fin := Section{
		GroupFinIssuingEquity: {Balance: dec("500")},
		GroupFinDividends:     {Balance: dec("-100")},
	}
	inv := Section{GroupInvestingPPE: {Balance: dec("-300")}}

	stmt := NewCashFlowStatement(op, fin, inv)

	assert.True(t, stmt.NetCashByActivity[CategoryOperating].Equal(dec("1080")))
	assert.True(t, stmt.NetCashByActivity[CategoryFinancing].Equal(dec("400")))
	assert.True(t, stmt.NetCashByActivity[CategoryInvesting].Equal(dec("-300")))
	assert.True(t, stmt.NetCash.Equal(dec("1180")))

	for _, c := range Categories() {
		assert.True(t, stmt.Section(c).Total().Equal(stmt.NetCashByActivity[c]), "category %s", c)
	}
	assert.Nil(t, stmt.Section(Category("OTHER")))
}
