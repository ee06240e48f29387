package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case getTransactionsMsg:
		return m.handleGetTransactions(msg)

	case getDashboardMsg:
		return m.handleGetDashboard(msg)

	case transactionSavedMsg:
		return m.handleTransactionSaved(msg)

	case transactionDeletedMsg:
		return m.handleTransactionDeleted(msg)

	case budgetSavedMsg:
		return m.handleBudgetSaved(msg)

	case loadErrorMsg:
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Could not load the ledger: %s", msg.err.Error())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case categorizeTransaction:
		return updateCategorizeTransaction(msg, &m)

	case transactions:
		return updateTransactions(msg, m)

	case trends:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "tab" {
			m.trend.ToggleFocus()
			return m, nil
		}
		m.trend, cmd = m.trend.Update(msg)
		return m, cmd

	case insertTransaction, editTransaction:
		return updateInsertTransaction(msg, &m)

	case budgets:
		return updateBudgets(msg, m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
