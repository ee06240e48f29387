// Package trend renders the monthly and cash flow series as tables.
package trend

import (
	"strings"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const barWidth = 20

type Colors struct {
	Primary string
}

type Model struct {
	monthly  table.Model
	cashFlow table.Model
	focused  int
}

func New(colors Colors) Model {
	monthly := table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 10},
			{Title: "Income", Width: 14},
			{Title: "Expense", Width: 14},
			{Title: "Net", Width: 14},
			{Title: "Spending", Width: barWidth},
		}),
	)
	cashFlow := table.New(
		table.WithColumns([]table.Column{
			{Title: "Day", Width: 10},
			{Title: "Running Balance", Width: 18},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	monthly.SetStyles(tableStyle)
	cashFlow.SetStyles(tableStyle)

	return Model{monthly: monthly, cashFlow: cashFlow}
}

func (m *Model) SetFocus(focus bool) {
	m.monthly.Blur()
	m.cashFlow.Blur()
	if !focus {
		return
	}
	if m.focused == 0 {
		m.monthly.Focus()
	} else {
		m.cashFlow.Focus()
	}
}

// ToggleFocus moves focus between the two tables.
func (m *Model) ToggleFocus() {
	m.focused = 1 - m.focused
	m.SetFocus(true)
}

func (m *Model) SetSize(width, height int) {
	m.monthly.SetWidth(width)
	m.monthly.SetHeight(height / 2)
	m.cashFlow.SetWidth(width)
	m.cashFlow.SetHeight(height - height/2)
}

// bar scales v against the largest value in the series.
func bar(v, largest decimal.Decimal) string {
	if !largest.IsPositive() {
		return ""
	}
	n := int(v.Mul(decimal.NewFromInt(barWidth)).Div(largest).IntPart())
	return strings.Repeat("▇", max(0, min(n, barWidth)))
}

// SetSeries fills both tables. Amounts are rendered in currency.
func (m *Model) SetSeries(monthly analytics.MonthlySeries, points []analytics.CashFlowPoint, currency string) {
	largest := decimal.Zero
	for _, e := range monthly.Expense {
		largest = decimal.Max(largest, e)
	}

	rows := make([]table.Row, 0, monthly.Len())
	for i := range monthly.Len() {
		rows = append(rows, table.Row{
			monthly.Labels[i] + " " + monthly.Keys[i][:4],
			ledger.FormatAmount(monthly.Income[i], currency),
			ledger.FormatAmount(monthly.Expense[i], currency),
			ledger.FormatAmount(monthly.Income[i].Sub(monthly.Expense[i]), currency),
			bar(monthly.Expense[i], largest),
		})
	}
	m.monthly.SetRows(rows)

	flow := make([]table.Row, 0, len(points))
	for _, p := range points {
		flow = append(flow, table.Row{p.Label, ledger.FormatAmount(p.Balance, currency)})
	}
	m.cashFlow.SetRows(flow)
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == 0 {
		m.monthly, cmd = m.monthly.Update(msg)
	} else {
		m.cashFlow, cmd = m.cashFlow.Update(msg)
	}
	return *m, cmd
}

func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true)
	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render("Monthly Income vs Expense"),
		m.monthly.View(),
		"",
		title.Render("Cash Flow"),
		m.cashFlow.View(),
	)
}
