package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case overviewState:
		b.WriteString(m.overview.View())
	case transactions:
		b.WriteString(transactionsView(m))
	case categorizeTransaction:
		b.WriteString(categorizeTransactionView(m))
	case insertTransaction, editTransaction:
		b.WriteString(insertTransactionView(m))
	case trends:
		b.WriteString(m.trend.View())
	case budgets:
		b.WriteString(budgetsView(m))
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Loading %s...", m.loadingSpinner.View(), m.loadingState))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	parts := []string{"pocketbook", m.sessionState.String()}
	if m.sessionState == transactions || m.sessionState == loading {
		parts = append(parts, m.period.Title(), m.period.Kind())
	}
	return m.styles.titleStyle.Render(strings.Join(parts, " | "))
}
