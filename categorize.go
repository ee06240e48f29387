package main

import (
	"github.com/Rshep3087/pocketbook/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func newCategorizeTransactionForm(set ledger.CategorySet, t ledger.Transaction, selected *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("New category").
			Description("Select a new category for the transaction").
			Options(categoryOptions(set, t.Type, t.Category)...).
			Key("category").
			Value(selected),
	))
}

// categorizeSelected opens the category picker for t.
func categorizeSelected(m *model, t ledger.Transaction) (tea.Model, tea.Cmd) {
	m.editing = &t
	m.transactionValues = newTransactionFormValues(&t, m.now())
	m.categoryForm = newCategorizeTransactionForm(m.store.CategorySet(), t, &m.transactionValues.category)

	m.previousSessionState = m.sessionState
	m.sessionState = categorizeTransaction
	return m, tea.Batch(m.categoryForm.Init(), tea.WindowSize())
}

func updateCategorizeTransaction(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.categoryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.categoryForm = f
	}

	switch m.categoryForm.State {
	case huh.StateCompleted:
		m.sessionState = transactions
		if m.editing == nil || m.transactionValues.category == m.editing.Category {
			return m, nil
		}
		in, err := m.transactionValues.input()
		if err != nil {
			return m, func() tea.Msg { return transactionSavedMsg{err: err} }
		}
		return m, m.editTransaction(m.editing.ID, in)

	case huh.StateAborted:
		m.sessionState = transactions
		return m, nil
	}

	return m, cmd
}

func categorizeTransactionView(m model) string {
	return m.categoryForm.View()
}
