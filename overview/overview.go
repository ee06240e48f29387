package overview

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/budget"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

const gaugeWidth = 30

// Model defines the state for the overview widget.
type Model struct {
	Styles    Styles
	Viewport  viewport.Model
	summary   analytics.Summary
	breakdown []analytics.CategoryTotal
	budget    *budget.Status
	limits    []budget.CategoryStatus
	currency  string
}

type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	WarningStyle  lipgloss.Style
	TreeRootStyle lipgloss.Style
	BranchStyle   lipgloss.Style
	LeafStyle     lipgloss.Style
	SummaryStyle  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		WarningStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e0a251")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		BranchStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		LeafStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),

		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

type Option func(*Model)

func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

func WithCurrency(code string) Option {
	return func(m *Model) {
		m.currency = code
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "INR",
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

func (m *Model) SetCurrency(code string) {
	m.currency = code
	m.UpdateViewport()
}

func (m *Model) SetSummary(s analytics.Summary) {
	m.summary = s
	m.UpdateViewport()
}

func (m *Model) SetBreakdown(b []analytics.CategoryTotal) {
	m.breakdown = b
	m.UpdateViewport()
}

// SetBudgets sets the overall budget status (nil when tracking is off) and
// the per category statuses.
func (m *Model) SetBudgets(overall *budget.Status, limits []budget.CategoryStatus) {
	m.budget = overall
	m.limits = limits
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m Model) format(d decimal.Decimal) string {
	return ledger.FormatAmount(d, m.currency)
}

func (m *Model) UpdateViewport() {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	spendingBreakdown := box.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			lipgloss.NewStyle().Bold(true).Render("Spending Breakdown"),
			table.New(
				table.WithColumns([]table.Column{
					{Title: "Category", Width: 20},
					{Title: "Total Spent", Width: 15},
					{Title: "% of Total", Width: 10},
				}),
				table.WithRows(m.breakdownRows()),
				table.WithHeight(len(m.breakdown)+1),
			).View(),
		),
	)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		box.Render(m.budgetTree().String()),
		spendingBreakdown,
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			"Overview",
			mainContent,
			box.Render(m.recentView()),
		),
	)
}

func (m Model) breakdownRows() []table.Row {
	rows := make([]table.Row, 0, len(m.breakdown))
	for _, c := range m.breakdown {
		rows = append(rows, table.Row{c.Category, m.format(c.Amount), c.Percent.StringFixed(2) + "%"})
	}
	return rows
}

func (m Model) summaryView() string {
	var b strings.Builder

	s := m.summary
	fmt.Fprintf(&b, "Income: %s\n", m.Styles.IncomeStyle.Render(m.format(s.Income)))
	fmt.Fprintf(&b, "Spent: %s\n", m.Styles.SpentStyle.Render(m.format(s.Expense)))
	if s.Balance.IsNegative() {
		fmt.Fprintf(&b, "Balance: %s\n", m.Styles.SpentStyle.Render(m.format(s.Balance)))
	} else {
		fmt.Fprintf(&b, "Balance: %s\n", m.Styles.IncomeStyle.Render(m.format(s.Balance)))
	}
	fmt.Fprintf(&b, "\nThis week: %s\n", m.format(s.Weekly))
	fmt.Fprintf(&b, "This month: %s\n", m.format(s.Monthly))

	top := s.TopCategory
	if top == "" {
		top = "-"
	}
	fmt.Fprintf(&b, "Top category: %s", top)

	return m.Styles.SummaryStyle.Render(b.String())
}

// gauge renders a fixed width progress bar for a budget percentage.
func gauge(pct decimal.Decimal) string {
	filled := int(pct.Mul(decimal.NewFromInt(gaugeWidth)).Div(decimal.NewFromInt(100)).IntPart())
	filled = max(0, min(filled, gaugeWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
}

func (m Model) levelStyle(l budget.Level) lipgloss.Style {
	switch l {
	case budget.Danger:
		return m.Styles.SpentStyle
	case budget.Warning:
		return m.Styles.WarningStyle
	default:
		return m.Styles.IncomeStyle
	}
}

func (m Model) budgetTree() *tree.Tree {
	t := tree.New().Root(m.Styles.TreeRootStyle.Render("Budget"))

	if m.budget == nil {
		t.Child(m.Styles.LeafStyle.Render("No monthly budget set"))
	} else {
		st := m.levelStyle(m.budget.Level)
		t.Child(
			tree.New().
				Root(m.Styles.BranchStyle.Render(titleCaser.String("monthly"))).
				Child(st.Render(gauge(m.budget.Percentage)+" "+m.budget.Percentage.StringFixed(0)+"%")).
				Child(fmt.Sprintf("%s of %s", m.format(m.budget.Spent), m.format(m.budget.Budget))).
				Child(st.Render(m.budget.Message(m.format))),
		)
	}

	if len(m.limits) > 0 {
		cats := tree.New().Root(m.Styles.BranchStyle.Render("Categories"))
		for _, c := range m.limits {
			text := fmt.Sprintf("%s %s / %s", c.Category, m.format(c.Spent), m.format(c.Budget))
			cats.Child(m.levelStyle(c.Level).Render(text))
		}
		t.Child(cats)
	}

	return t
}

func (m Model) recentView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Recent Transactions"))
	if len(m.summary.Recent) == 0 {
		b.WriteString("\nNo transactions yet")
		return b.String()
	}

	for _, t := range m.summary.Recent {
		amount := m.format(t.Amount)
		if t.Type == ledger.Expense {
			amount = m.Styles.SpentStyle.Render("-" + amount)
		} else {
			amount = m.Styles.IncomeStyle.Render("+" + amount)
		}
		fmt.Fprintf(&b, "\n%s  %-15s %s", t.Date, titleCaser.String(t.Category), amount)
	}
	return b.String()
}
