package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	transactions   key.Binding
	overview       key.Binding
	trends         key.Binding
	budgets        key.Binding
	config         key.Binding
	nextPeriod     key.Binding
	previousPeriod key.Binding
	switchPeriod   key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
	forceQuit      key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.transactions,
		km.budgets,
		km.trends,
		km.switchPeriod,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.transactions,
			km.budgets,
			km.trends,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.nextPeriod,
			km.previousPeriod,
			km.switchPeriod,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		trends: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "trends"),
		),
		budgets: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "budgets"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		previousPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous period"),
		),
		switchPeriod: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch range"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
	return keys
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	// Handle navigation keys
	if model, cmd := handleNavigationKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(msg, m)
	}

	return m, nil
}

func formActive(f *huh.Form) bool {
	return f != nil && f.State == huh.StateNormal
}

func isInputBlocked(m *model) bool {
	if m.transactions.FilterState() == list.Filtering || m.budgets.FilterState() == list.Filtering {
		return true
	}

	switch m.sessionState {
	case categorizeTransaction:
		return formActive(m.categoryForm)
	case insertTransaction, editTransaction:
		return formActive(m.insertTransactionForm)
	case budgets:
		return formActive(m.budgetForm)
	case loading:
		return true
	}

	return false
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextPeriod):
		return advancePeriod(m)
	case key.Matches(msg, m.keys.previousPeriod):
		return retrievePreviousPeriod(m)
	case key.Matches(msg, m.keys.switchPeriod):
		return switchPeriodType(m)
	}

	return m, nil
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.transactions):
		if m.sessionState != transactions {
			m.previousSessionState = m.sessionState
			m.sessionState = transactions
			return m, m.getTransactions
		}

	case key.Matches(msg, m.keys.trends):
		if m.sessionState != trends {
			m.previousSessionState = m.sessionState
			m.trend.SetFocus(true)
			m.sessionState = trends
			return m, m.getDashboard
		}

	case key.Matches(msg, m.keys.overview):
		if m.sessionState != overviewState {
			m.previousSessionState = m.sessionState
			m.sessionState = overviewState
			return m, m.getDashboard
		}

	case key.Matches(msg, m.keys.budgets):
		if m.sessionState != budgets {
			m.previousSessionState = m.sessionState
			m.sessionState = budgets
			return m, m.getDashboard
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
			return m, noop
		}

	case key.Matches(msg, m.keys.fullHelp):
		if m.sessionState != transactions && m.sessionState != budgets {
			m.help.ShowAll = !m.help.ShowAll
			return m, noop
		}
	}

	return m, nil
}

// handleEscape closes the open form or filter, or returns to the overview.
func handleEscape(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case categorizeTransaction:
		log.Debug("handling escape in categorize transaction state")
		m.categoryForm.State = huh.StateAborted
		m.sessionState = transactions
		return m, m.getTransactions

	case insertTransaction, editTransaction:
		log.Debug("handling escape in insert transaction state")
		m.insertTransactionForm.State = huh.StateAborted
		m.sessionState = transactions
		return m, m.getTransactions

	case budgets:
		if m.budgetForm != nil {
			m.budgetForm = nil
			return m, m.getDashboard
		}
		if m.budgets.FilterState() != list.Unfiltered {
			var cmd tea.Cmd
			m.budgets, cmd = m.budgets.Update(msg)
			return m, tea.Batch(cmd, noop)
		}

	case transactions:
		// handle if user is filtering transactions and presses escape
		if m.transactions.FilterState() != list.Unfiltered {
			log.Debug("handling escape in transactions filtering")
			var cmd tea.Cmd
			m.transactions, cmd = m.transactions.Update(msg)
			return m, tea.Batch(cmd, noop)
		}
	}

	m.previousSessionState = m.sessionState
	m.sessionState = overviewState
	return m, m.getDashboard
}

// noop marks a key as handled when there is nothing else to do.
func noop() tea.Msg { return nil }
