package main

import (
	"github.com/Rshep3087/pocketbook/analytics"
	tea "github.com/charmbracelet/bubbletea"
)

// advancePeriod moves the transactions view forward by one month or year.
func advancePeriod(m *model) (tea.Model, tea.Cmd) {
	return reloadPeriod(m, m.period.Next())
}

// retrievePreviousPeriod moves the transactions view back by one month or year.
func retrievePreviousPeriod(m *model) (tea.Model, tea.Cmd) {
	return reloadPeriod(m, m.period.Previous())
}

// switchPeriodType toggles between monthly and annual ranges.
func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	return reloadPeriod(m, m.period.Switch())
}

func reloadPeriod(m *model, p analytics.Period) (tea.Model, tea.Cmd) {
	m.period = p

	if m.sessionState != loading {
		m.previousSessionState = m.sessionState
	}
	m.sessionState = loading

	m.loadingState.unset(transactionsLoadingKey)
	return m, m.getTransactions
}
