package main

import (
	"context"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/budget"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// storeTimeout bounds a single write to the backend.
const storeTimeout = 10 * time.Second

// Message types for data loaded from the ledger.
type (
	getTransactionsMsg struct {
		ts     []ledger.Transaction
		period analytics.Period
	}

	getDashboardMsg struct {
		data       *SummaryData
		monthly    analytics.MonthlySeries
		cashFlow   []analytics.CashFlowPoint
		spent      map[string]decimal.Decimal
		categories []ledger.Category
		settings   ledger.Settings
	}

	transactionSavedMsg struct {
		t    ledger.Transaction
		verb string
		err  error
	}

	transactionDeletedMsg struct {
		t   ledger.Transaction
		err error
	}

	budgetSavedMsg struct {
		category string
		err      error
	}

	loadErrorMsg struct {
		err error
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	width, height := msg.Width-h, msg.Height-v-chromeHeight
	m.overview.SetSize(width, height)
	m.transactions.SetSize(width, height)
	m.budgets.SetSize(width, height)
	m.trend.SetSize(width, height)
	m.configView.SetSize(width, height)

	m.help.Width = msg.Width

	for _, f := range []**huh.Form{&m.categoryForm, &m.insertTransactionForm, &m.budgetForm} {
		if *f != nil {
			*f = (*f).WithHeight(height).WithWidth(width)
		}
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleGetTransactions(msg getTransactionsMsg) (tea.Model, tea.Cmd) {
	items := make([]list.Item, len(msg.ts))
	for i, t := range msg.ts {
		items[i] = transactionItem{t: t, currency: m.currency}
	}

	cmd := m.transactions.SetItems(items)
	m.period = msg.period

	m.loadingState.set(transactionsLoadingKey)
	m.sessionState = m.checkIfLoading()

	return m, cmd
}

func (m model) handleGetDashboard(msg getDashboardMsg) (tea.Model, tea.Cmd) {
	m.currency = msg.settings.Currency

	m.overview.SetCurrency(m.currency)
	if msg.data != nil {
		m.overview.SetSummary(msg.data.Summary)
		m.overview.SetBreakdown(msg.data.Breakdown)
		m.overview.SetBudgets(msg.data.Budget, msg.data.Limits)
	}
	m.trend.SetSeries(msg.monthly, msg.cashFlow, m.currency)

	cmd := m.budgets.SetItems(budgetItems(msg, m.currency))

	m.loadingState.set(dashboardLoadingKey)
	m.sessionState = m.checkIfLoading()

	return m, cmd
}

// budgetItems lists the overall budget first, then every expense category
// with its limit, if any, and this month's spending.
func budgetItems(msg getDashboardMsg, currency string) []list.Item {
	var data SummaryData
	if msg.data != nil {
		data = *msg.data
	}

	items := make([]list.Item, 0, len(msg.categories)+1)
	items = append(items, budgetItem{
		overall:  true,
		category: "Monthly budget",
		limit:    msg.settings.MonthlyBudget,
		spent:    data.Summary.Monthly,
		status:   data.Budget,
		currency: currency,
	})

	limits := make(map[string]budget.Status, len(data.Limits))
	for _, l := range data.Limits {
		limits[l.Category] = l.Status
	}

	for _, c := range msg.categories {
		item := budgetItem{
			category: c.Name,
			limit:    msg.settings.CategoryBudgets[c.Name],
			spent:    msg.spent[c.Name],
			currency: currency,
		}
		if s, ok := limits[c.Name]; ok {
			item.status = &s
		}
		items = append(items, item)
	}
	return items
}

func (m model) handleTransactionSaved(msg transactionSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("failed to save transaction", "error", msg.err)
		return m, m.transactions.NewStatusMessage(
			m.styles.errorStyle.Render("Error saving transaction: " + msg.err.Error()),
		)
	}

	return m, tea.Batch(
		m.getTransactions,
		m.getDashboard,
		m.transactions.NewStatusMessage("Transaction " + msg.verb + ": " + msg.t.Category),
	)
}

func (m model) handleTransactionDeleted(msg transactionDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("failed to delete transaction", "error", msg.err)
		return m, m.transactions.NewStatusMessage(
			m.styles.errorStyle.Render("Error deleting transaction: " + msg.err.Error()),
		)
	}

	return m, tea.Batch(
		m.getTransactions,
		m.getDashboard,
		m.transactions.NewStatusMessage("Deleted " + msg.t.Category + " on " + msg.t.Date),
	)
}

func (m model) handleBudgetSaved(msg budgetSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("failed to save budget", "error", msg.err)
		return m, m.budgets.NewStatusMessage(
			m.styles.errorStyle.Render("Error saving budget: " + msg.err.Error()),
		)
	}
	return m, tea.Batch(m.getDashboard, m.budgets.NewStatusMessage("Budget updated for "+msg.category))
}

// Ledger reads.
func (m model) getTransactions() tea.Msg {
	ts := analytics.Filter(m.store.Transactions(), m.period.Criteria())
	return getTransactionsMsg{ts: ts, period: m.period}
}

// getDashboard derives every dashboard figure from one snapshot, computing
// the independent pieces concurrently.
func (m model) getDashboard() tea.Msg {
	st := m.store.State()
	now := m.now()

	g, ctx := errgroup.WithContext(m.ctx)
	msg := getDashboardMsg{
		categories: st.Categories.Of(ledger.Expense),
		settings:   st.Settings,
	}

	g.Go(func() error {
		msg.data = calculateSummaryData(st, now, true)
		return ctx.Err()
	})
	g.Go(func() error {
		msg.monthly = analytics.BuildMonthlySeries(st.Transactions, analytics.DefaultMonths, now)
		return ctx.Err()
	})
	g.Go(func() error {
		msg.cashFlow = analytics.CashFlowSeries(st.Transactions, analytics.DefaultCashFlowDays, now)
		return ctx.Err()
	})
	g.Go(func() error {
		msg.spent = analytics.MonthlyCategorySpending(st.Transactions, now)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return loadErrorMsg{err: err}
	}
	return msg
}

// Ledger writes.
func (m model) addTransaction(in ledger.TransactionInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
		defer cancel()

		t, err := m.store.AddTransaction(ctx, in)
		return transactionSavedMsg{t: t, verb: "added", err: err}
	}
}

func (m model) editTransaction(id string, in ledger.TransactionInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
		defer cancel()

		t, found, err := m.store.EditTransaction(ctx, id, in)
		if err == nil && !found {
			err = errTransactionGone
		}
		return transactionSavedMsg{t: t, verb: "updated", err: err}
	}
}

func (m model) deleteTransaction(t ledger.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
		defer cancel()

		if _, err := m.store.DeleteTransaction(ctx, t.ID); err != nil {
			return transactionDeletedMsg{t: t, err: err}
		}
		return transactionDeletedMsg{t: t}
	}
}

func (m model) saveBudget(item budgetItem, amount decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
		defer cancel()

		var err error
		if item.overall {
			err = m.store.SetMonthlyBudget(ctx, amount)
		} else {
			err = m.store.SetCategoryBudget(ctx, item.category, amount)
		}
		return budgetSavedMsg{category: item.category, err: err}
	}
}
