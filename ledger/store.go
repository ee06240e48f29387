package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Rshep3087/pocketbook/storage"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the in-memory collections and writes each one back to the
// backend after it changes. A Store is safe for concurrent use; writes are
// serialized.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	now     func() time.Time
	newID   func() (string, error)

	transactions []Transaction
	categories   CategorySet
	settings     Settings
}

type Option func(*Store)

// WithClock overrides the time source used for createdAt and category ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides transaction id generation.
func WithIDGenerator(f func() (string, error)) Option {
	return func(s *Store) { s.newID = f }
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Open loads the persisted records from backend. Missing or corrupt records
// fall back to their defaults; missing categories are seeded and saved.
func Open(ctx context.Context, backend storage.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	txs, _, err := read(ctx, s.backend, storage.KeyTransactions, func() []Transaction { return nil })
	if err != nil {
		return err
	}
	s.transactions = txs

	cats, found, err := read(ctx, s.backend, storage.KeyCategories, DefaultCategories)
	if err != nil {
		return err
	}
	if !found {
		if err := s.write(ctx, storage.KeyCategories, cats); err != nil {
			return err
		}
		log.Debug("seeded default categories")
	}
	s.categories = cats

	settings, _, err := read(ctx, s.backend, storage.KeySettings, DefaultSettings)
	if err != nil {
		return err
	}
	s.settings = settings

	log.Debug("ledger loaded", "transactions", len(s.transactions),
		"expenseCategories", len(s.categories.Expense), "incomeCategories", len(s.categories.Income))
	return nil
}

// read decodes the record stored under key on top of a fresh fallback value.
// It reports false, returning the fallback, when the key is absent or its
// contents cannot be decoded.
func read[T any](ctx context.Context, b storage.Backend, key string, fallback func() T) (T, bool, error) {
	data, err := b.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return fallback(), false, nil
	}
	if err != nil {
		return fallback(), false, fmt.Errorf("load %s: %w", key, err)
	}

	v := fallback()
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("discarding unreadable record", "key", key, "err", err)
		return fallback(), false, nil
	}
	return v, true, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Transactions returns a copy of all transactions, most recent insert first.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// Transaction returns the transaction with the given id.
func (s *Store) Transaction(id string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Transaction{}, false
	}
	return s.transactions[i], true
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
}

// AddTransaction validates in, assigns an id and creation time, and inserts
// the transaction at the front of the collection.
func (s *Store) AddTransaction(ctx context.Context, in TransactionInput) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := in.validate(); err != nil {
		return Transaction{}, err
	}

	id, err := s.newID()
	if err != nil {
		return Transaction{}, fmt.Errorf("generate id: %w", err)
	}

	t := Transaction{
		ID:        id,
		Amount:    in.Amount,
		Type:      in.Type,
		Category:  strings.TrimSpace(in.Category),
		Date:      in.Date,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: s.now().UTC(),
	}

	next := make([]Transaction, 0, len(s.transactions)+1)
	next = append(next, t)
	next = append(next, s.transactions...)
	if err := s.write(ctx, storage.KeyTransactions, next); err != nil {
		return Transaction{}, err
	}
	s.transactions = next

	log.Debug("transaction added", "id", t.ID, "type", t.Type, "amount", t.Amount)
	return t, nil
}

// EditTransaction replaces every field of the transaction except its id and
// creation time. found is false, and nothing changes, when id is unknown.
func (s *Store) EditTransaction(ctx context.Context, id string, in TransactionInput) (t Transaction, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Transaction{}, false, nil
	}
	if err := in.validate(); err != nil {
		return Transaction{}, true, err
	}

	t = s.transactions[i]
	t.Amount = in.Amount
	t.Type = in.Type
	t.Category = strings.TrimSpace(in.Category)
	t.Date = in.Date
	t.Note = strings.TrimSpace(in.Note)

	next := slices.Clone(s.transactions)
	next[i] = t
	if err := s.write(ctx, storage.KeyTransactions, next); err != nil {
		return Transaction{}, true, err
	}
	s.transactions = next

	log.Debug("transaction edited", "id", id)
	return t, true, nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.transactions), i, i+1)
	if err := s.write(ctx, storage.KeyTransactions, next); err != nil {
		return false, err
	}
	s.transactions = next

	log.Debug("transaction deleted", "id", id)
	return true, nil
}

// CategorySet returns a copy of both category partitions.
func (s *Store) CategorySet() CategorySet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.Clone()
}

// Categories returns a copy of the categories of type t.
func (s *Store) Categories(t Type) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories.Of(t))
}

var whitespace = regexp.MustCompile(`\s+`)

func slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// AddCategory creates a user category. Its id is derived from the name and
// the current time in milliseconds.
func (s *Store) AddCategory(ctx context.Context, name string, t Type) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if !t.Valid() {
		return Category{}, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, t)
	}

	ms := s.now().UnixMilli()
	id := slug(name) + "_" + strconv.FormatInt(ms, 10)
	for {
		if _, taken := s.categories.Find(id); !taken {
			break
		}
		ms++
		id = slug(name) + "_" + strconv.FormatInt(ms, 10)
	}

	c := Category{ID: id, Name: name, Type: t}
	next := s.categories.Clone()
	if t == Income {
		next.Income = append(next.Income, c)
	} else {
		next.Expense = append(next.Expense, c)
	}
	if err := s.write(ctx, storage.KeyCategories, next); err != nil {
		return Category{}, err
	}
	s.categories = next

	log.Debug("category added", "id", c.ID, "type", t)
	return c, nil
}

// UpdateCategory renames the category with the given id in whichever
// partition holds it. Transactions keep the old name.
func (s *Store) UpdateCategory(ctx context.Context, id, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	next := s.categories.Clone()
	found := false
	for _, list := range [][]Category{next.Expense, next.Income} {
		for i := range list {
			if list[i].ID == id {
				list[i].Name = name
				found = true
			}
		}
	}
	if !found {
		return false, nil
	}

	if err := s.write(ctx, storage.KeyCategories, next); err != nil {
		return false, err
	}
	s.categories = next
	return true, nil
}

// DeleteCategory removes the category with the given id from both
// partitions. Built-in categories return ErrProtected.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories.Find(id)
	if !ok {
		return false, nil
	}
	if c.IsDefault {
		return false, fmt.Errorf("delete %q: %w", c.Name, ErrProtected)
	}

	keep := func(list []Category) []Category {
		return slices.DeleteFunc(slices.Clone(list), func(c Category) bool { return c.ID == id })
	}
	next := CategorySet{Expense: keep(s.categories.Expense), Income: keep(s.categories.Income)}
	if err := s.write(ctx, storage.KeyCategories, next); err != nil {
		return false, err
	}
	s.categories = next

	log.Debug("category deleted", "id", id)
	return true, nil
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.clone()
}

func (s *Store) updateSettings(ctx context.Context, mutate func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.settings.clone()
	mutate(&next)
	if err := s.write(ctx, storage.KeySettings, next); err != nil {
		return err
	}
	s.settings = next
	return nil
}

// SetCurrency changes the display currency. Stored amounts are not touched.
func (s *Store) SetCurrency(ctx context.Context, code string) error {
	c, err := LookupCurrency(code)
	if err != nil {
		return err
	}
	return s.updateSettings(ctx, func(st *Settings) { st.Currency = c.Code })
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	theme, err := ParseTheme(theme)
	if err != nil {
		return err
	}
	return s.updateSettings(ctx, func(st *Settings) { st.Theme = theme })
}

// SetMonthlyBudget sets the overall monthly spending limit. Zero disables
// budget tracking.
func (s *Store) SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}
	return s.updateSettings(ctx, func(st *Settings) { st.MonthlyBudget = amount })
}

// SetCategoryBudget sets the monthly limit for one expense category. Zero
// removes the limit.
func (s *Store) SetCategoryBudget(ctx context.Context, category string, amount decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}
	return s.updateSettings(ctx, func(st *Settings) {
		if amount.IsZero() {
			delete(st.CategoryBudgets, category)
			return
		}
		if st.CategoryBudgets == nil {
			st.CategoryBudgets = make(map[string]decimal.Decimal)
		}
		st.CategoryBudgets[category] = amount
	})
}

// State returns a copy of all three records.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Transactions: slices.Clone(s.transactions),
		Categories:   s.categories.Clone(),
		Settings:     s.settings.clone(),
	}
}

// ReplaceAll persists all three records and then swaps them in. If any write
// fails the in-memory state is left as it was.
func (s *Store) ReplaceAll(ctx context.Context, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceAll(ctx, st)
}

func (s *Store) replaceAll(ctx context.Context, st State) error {
	if st.Transactions == nil {
		st.Transactions = []Transaction{}
	}

	records := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		storage.KeyTransactions: st.Transactions,
		storage.KeyCategories:   st.Categories,
		storage.KeySettings:     st.Settings,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		records[key] = data
	}
	if err := s.backend.SaveAll(ctx, records); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	s.transactions = slices.Clone(st.Transactions)
	s.categories = st.Categories.Clone()
	s.settings = st.Settings.clone()
	log.Debug("ledger replaced", "transactions", len(s.transactions))
	return nil
}

// Reset deletes every record and starts over with the default categories
// and settings.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range []string{storage.KeyTransactions, storage.KeyCategories, storage.KeySettings} {
		if err := s.backend.Clear(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.transactions = nil
	s.categories = CategorySet{}
	s.settings = Settings{}

	return s.replaceAll(ctx, State{
		Transactions: []Transaction{},
		Categories:   DefaultCategories(),
		Settings:     DefaultSettings(),
	})
}
