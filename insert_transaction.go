package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// transactionFormValues backs the add and edit form fields.
type transactionFormValues struct {
	typ      ledger.Type
	amount   string
	category string
	date     string
	note     string
}

func newTransactionFormValues(t *ledger.Transaction, today time.Time) *transactionFormValues {
	if t == nil {
		return &transactionFormValues{
			typ:  ledger.Expense,
			date: today.Format(ledger.DateLayout),
		}
	}
	return &transactionFormValues{
		typ:      t.Type,
		amount:   t.Amount.String(),
		category: t.Category,
		date:     t.Date,
		note:     t.Note,
	}
}

// input converts the form values into a ledger input.
func (v transactionFormValues) input() (ledger.TransactionInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(v.amount))
	if err != nil {
		return ledger.TransactionInput{}, fmt.Errorf("%w: invalid amount %q", ledger.ErrInvalidInput, v.amount)
	}
	return ledger.TransactionInput{
		Type:     v.typ,
		Amount:   amount,
		Category: v.category,
		Date:     strings.TrimSpace(v.date),
		Note:     v.note,
	}, nil
}

func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount is required")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("amount must be a valid number")
	}
	if !d.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(ledger.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}

// categoryOptions lists the category names of type t. current is kept as an
// option even when it is no longer a category, so editing an old
// transaction does not force a change.
func categoryOptions(set ledger.CategorySet, t ledger.Type, current string) []huh.Option[string] {
	cats := set.Of(t)
	opts := make([]huh.Option[string], 0, len(cats)+1)
	seen := false
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.Name, c.Name))
		seen = seen || c.Name == current
	}
	if current != "" && !seen {
		opts = append(opts, huh.NewOption(current+" (removed)", current))
	}
	return opts
}

func newTransactionForm(v *transactionFormValues, set ledger.CategorySet, editing bool) *huh.Form {
	title := "New transaction"
	if editing {
		title = "Edit transaction"
	}
	current := v.category

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Type]().
				Title(title).
				Description("Is this money going out or coming in?").
				Options(
					huh.NewOption("Expense", ledger.Expense),
					huh.NewOption("Income", ledger.Income),
				).
				Key("type").
				Value(&v.typ),

			huh.NewInput().
				Title("Amount").
				Description("Amount in the base currency").
				Key("amount").
				Placeholder("e.g. 450.00").
				Value(&v.amount).
				Validate(validateAmount),

			huh.NewSelect[string]().
				Title("Category").
				Key("category").
				OptionsFunc(func() []huh.Option[string] {
					return categoryOptions(set, v.typ, current)
				}, &v.typ).
				Value(&v.category).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("category is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("Transaction date (YYYY-MM-DD)").
				Key("date").
				Placeholder("YYYY-MM-DD").
				Value(&v.date).
				Validate(validateDate),

			huh.NewText().
				Title("Note (Optional)").
				Key("note").
				Placeholder("Enter a note...").
				Value(&v.note),
		),
	)
}

// insertNewTransaction opens the transaction form, prefilled from editing
// when it is not nil.
func insertNewTransaction(m *model, editing *ledger.Transaction) (tea.Model, tea.Cmd) {
	m.editing = editing
	m.transactionValues = newTransactionFormValues(editing, m.now())
	m.insertTransactionForm = newTransactionForm(m.transactionValues, m.store.CategorySet(), editing != nil)

	m.previousSessionState = m.sessionState
	m.sessionState = insertTransaction
	if editing != nil {
		m.sessionState = editTransaction
	}
	return m, tea.Batch(m.insertTransactionForm.Init(), tea.WindowSize())
}

func updateInsertTransaction(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.insertTransactionForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.insertTransactionForm = f
	}

	switch m.insertTransactionForm.State {
	case huh.StateCompleted:
		m.sessionState = transactions
		in, err := m.transactionValues.input()
		if err != nil {
			return m, func() tea.Msg { return transactionSavedMsg{err: err} }
		}

		if m.editing != nil {
			log.Debug("editing transaction", "id", m.editing.ID)
			return m, m.editTransaction(m.editing.ID, in)
		}
		log.Debug("inserting transaction", "type", in.Type, "amount", in.Amount)
		return m, m.addTransaction(in)

	case huh.StateAborted:
		m.sessionState = transactions
		return m, nil
	}

	return m, cmd
}

func insertTransactionView(m model) string {
	return m.insertTransactionForm.View()
}
