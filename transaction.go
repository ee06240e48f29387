package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var errTransactionGone = errors.New("transaction no longer exists")

type transactionItem struct {
	t        ledger.Transaction
	currency string
}

func (t transactionItem) Title() string {
	if t.t.Note == "" {
		return t.t.Category
	}
	return fmt.Sprintf("%s · %s", t.t.Category, t.t.Note)
}

func (t transactionItem) Description() string {
	return fmt.Sprintf("%s %s %s", t.t.Date, titleCaser.String(string(t.t.Type)), t.amount())
}

// amount renders the signed amount in the display currency.
func (t transactionItem) amount() string {
	a := ledger.FormatAmount(t.t.Amount, t.currency)
	if t.t.Type == ledger.Expense {
		return "-" + a
	}
	return "+" + a
}

func (t transactionItem) FilterValue() string {
	return t.t.Category + " " + t.t.Note + " " + t.t.Amount.String()
}

type transactionListKeyMap struct {
	insertTransaction     key.Binding
	editTransaction       key.Binding
	categorizeTransaction key.Binding
}

func newTransactionListKeyMap() *transactionListKeyMap {
	return &transactionListKeyMap{
		insertTransaction: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add transaction"),
		),
		editTransaction: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit transaction"),
		),
		categorizeTransaction: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categorize transaction"),
		),
	}
}

// createTransactionList creates a new list model for transactions.
func createTransactionList(delegate list.DefaultDelegate, keys *transactionListKeyMap) list.Model {
	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.DisableQuitKeybindings()
	transactionList.SetStatusBarItemName("transaction", "transactions")
	transactionList.StatusMessageLifetime = 3 * time.Second
	transactionList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.insertTransaction, keys.editTransaction, keys.categorizeTransaction}
	}
	return transactionList
}

func updateTransactions(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.transactions.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.transactionsListKeys.insertTransaction):
			return insertNewTransaction(&m, nil)

		case key.Matches(msg, m.transactionsListKeys.editTransaction):
			if ti, ok := m.transactions.SelectedItem().(transactionItem); ok {
				return insertNewTransaction(&m, &ti.t)
			}

		case key.Matches(msg, m.transactionsListKeys.categorizeTransaction):
			if ti, ok := m.transactions.SelectedItem().(transactionItem); ok {
				return categorizeSelected(&m, ti.t)
			}
		}
	}

	var cmd tea.Cmd
	m.transactions, cmd = m.transactions.Update(msg)

	return m, cmd
}

func transactionsView(m model) string {
	return m.transactions.View()
}
