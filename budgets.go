package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rshep3087/pocketbook/budget"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// budgetItem is one row of the budgets list: the overall monthly budget or
// a single expense category.
type budgetItem struct {
	overall  bool
	category string
	limit    decimal.Decimal
	spent    decimal.Decimal
	// status is nil when no limit is set
	status   *budget.Status
	currency string
}

// Implement list.Item interface for budgetItem.
func (b budgetItem) Title() string {
	return b.category
}

func (b budgetItem) Description() string {
	format := func(d decimal.Decimal) string { return ledger.FormatAmount(d, b.currency) }
	if b.status == nil {
		return fmt.Sprintf("Spent %s this month | No limit", format(b.spent))
	}
	return fmt.Sprintf("Spent %s of %s (%s%%) | %s",
		format(b.status.Spent), format(b.status.Budget), b.status.Percentage.StringFixed(0), b.status.Message(format))
}

func (b budgetItem) FilterValue() string {
	return b.category
}

type budgetListKeyMap struct {
	setLimit key.Binding
}

func newBudgetListKeyMap() *budgetListKeyMap {
	return &budgetListKeyMap{
		setLimit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "set limit"),
		),
	}
}

func (m model) newBudgetDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	m.selectedStyles(&d)
	return d
}

// createBudgetList creates a new list model for budgets.
func createBudgetList(delegate list.DefaultDelegate, keys *budgetListKeyMap) list.Model {
	budgetList := list.New([]list.Item{}, delegate, 0, 0)
	budgetList.SetShowTitle(false)
	budgetList.DisableQuitKeybindings()
	budgetList.SetStatusBarItemName("budget", "budgets")
	budgetList.StatusMessageLifetime = 3 * time.Second
	budgetList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.setLimit}
	}
	return budgetList
}

func validateBudget(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("limit must be a valid number")
	}
	if d.IsNegative() {
		return errors.New("limit cannot be negative")
	}
	return nil
}

func newBudgetForm(item budgetItem, value *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Monthly limit for " + item.category).
			Description("Enter 0 to remove the limit").
			Key("limit").
			Placeholder("e.g. 5000").
			Value(value).
			Validate(validateBudget),
	))
}

// updateBudgets handles the budgets view updates.
func updateBudgets(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if m.budgetForm != nil && m.budgetForm.State == huh.StateNormal {
		return updateBudgetForm(msg, m)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.budgets.FilterState() != list.Filtering &&
		key.Matches(msg, m.budgetsListKeys.setLimit) {
		item, ok := m.budgets.SelectedItem().(budgetItem)
		if !ok {
			return m, nil
		}

		value := ""
		if item.limit.IsPositive() {
			value = item.limit.String()
		}
		m.budgetTarget = item
		m.budgetAmount = &value
		m.budgetForm = newBudgetForm(item, m.budgetAmount)
		return m, tea.Batch(m.budgetForm.Init(), tea.WindowSize())
	}

	// Period navigation and other keys are handled in handleKeyPress
	// so we just need to handle the list updates here
	var cmd tea.Cmd
	m.budgets, cmd = m.budgets.Update(msg)
	return m, cmd
}

func updateBudgetForm(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	form, cmd := m.budgetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.budgetForm = f
	}

	switch m.budgetForm.State {
	case huh.StateCompleted:
		amount, err := decimal.NewFromString(strings.TrimSpace(*m.budgetAmount))
		m.budgetForm = nil
		if err != nil {
			return m, m.budgets.NewStatusMessage(m.styles.errorStyle.Render("Invalid limit"))
		}
		return m, m.saveBudget(m.budgetTarget, amount)
	case huh.StateAborted:
		m.budgetForm = nil
		return m, nil
	}

	return m, cmd
}

// budgetsView renders the budgets view.
func budgetsView(m model) string {
	if m.budgetForm != nil {
		return m.budgetForm.View()
	}
	return m.budgets.View()
}
