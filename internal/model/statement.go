package model

import "github.com/shopspring/decimal"

// LineItem is one captioned balance on a cash-flow statement.
type LineItem struct {
	Description string          `json:"description" yaml:"description"`
	Balance     decimal.Decimal `json:"balance" yaml:"balance"`
}

// Section holds the line items of one cash-flow activity keyed by group.
type Section map[Group]LineItem

// Total sums the balances of every line item in s.
func (s Section) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s {
		total = total.Add(item.Balance)
	}
	return total
}

// CashFlowStatement is the derived statement written back into a digest.
type CashFlowStatement struct {
	Operating         Section                      `json:"operating" yaml:"operating"`
	Financing         Section                      `json:"financing" yaml:"financing"`
	Investing         Section                      `json:"investing" yaml:"investing"`
	NetCashByActivity map[Category]decimal.Decimal `json:"net_cash_by_activity" yaml:"net_cash_by_activity"`
	NetCash           decimal.Decimal              `json:"net_cash" yaml:"net_cash"`
}

// NewCashFlowStatement assembles a statement from its three sections. The
// per-activity subtotals and net cash are derived here and nowhere else, so
// they always reconcile with the line items.
func NewCashFlowStatement(operating, financing, investing Section) *CashFlowStatement {
	byActivity := map[Category]decimal.Decimal{
		CategoryOperating: operating.Total(),
		CategoryFinancing: financing.Total(),
		CategoryInvesting: investing.Total(),
	}

	net := decimal.Zero
	for _, c := range Categories() {
		net = net.Add(byActivity[c])
	}

	return &CashFlowStatement{
		Operating:         operating,
		Financing:         financing,
		Investing:         investing,
		NetCashByActivity: byActivity,
		NetCash:           net,
	}
}

// Section returns the section for category c.
func (s *CashFlowStatement) Section(c Category) Section {
	switch c {
	case CategoryOperating:
		return s.Operating
	case CategoryFinancing:
		return s.Financing
	case CategoryInvesting:
		return s.Investing
	}
	return nil
}
