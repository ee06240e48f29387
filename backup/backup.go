// Package backup reads and writes backup files and reconciles an imported
// backup with the current ledger.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
)

// Version is written into every exported file. It is informational only.
const Version = "1.0"

// ErrInvalidBackup is returned for files that cannot be imported.
var ErrInvalidBackup = errors.New("invalid backup")

// File is the on-disk backup format. A nil Transactions or Categories means
// the section was absent from the file.
type File struct {
	Version      string               `json:"version"`
	ExportDate   time.Time            `json:"exportDate"`
	Transactions []ledger.Transaction `json:"transactions"`
	Categories   *ledger.CategorySet  `json:"categories,omitempty"`
	Settings     *SettingsPatch       `json:"settings,omitempty"`
}

// SettingsPatch holds the settings keys present in a backup. Nil fields are
// left alone when the patch is applied.
type SettingsPatch struct {
	Currency        *string                    `json:"currency,omitempty"`
	Theme           *string                    `json:"theme,omitempty"`
	MonthlyBudget   *decimal.Decimal           `json:"monthlyBudget,omitempty"`
	CategoryBudgets map[string]decimal.Decimal `json:"categoryBudgets,omitempty"`
}

func patchFrom(s ledger.Settings) *SettingsPatch {
	budget := s.MonthlyBudget
	return &SettingsPatch{
		Currency:        &s.Currency,
		Theme:           &s.Theme,
		MonthlyBudget:   &budget,
		CategoryBudgets: s.CategoryBudgets,
	}
}

// Apply returns s with every key present in p overwritten. Currency and
// theme are stored in their canonical form; p is expected to have passed
// Validate.
func (p SettingsPatch) Apply(s ledger.Settings) ledger.Settings {
	if p.Currency != nil {
		if c, err := ledger.LookupCurrency(*p.Currency); err == nil {
			s.Currency = c.Code
		}
	}
	if p.Theme != nil {
		if theme, err := ledger.ParseTheme(*p.Theme); err == nil {
			s.Theme = theme
		}
	}
	if p.MonthlyBudget != nil {
		s.MonthlyBudget = *p.MonthlyBudget
	}
	if p.CategoryBudgets != nil {
		s.CategoryBudgets = make(map[string]decimal.Decimal, len(p.CategoryBudgets))
		for k, v := range p.CategoryBudgets {
			s.CategoryBudgets[k] = v
		}
	}
	return s
}

// Export snapshots st into a backup file.
func Export(st ledger.State, now time.Time) File {
	txs := append([]ledger.Transaction{}, st.Transactions...)
	cats := st.Categories.Clone()
	return File{
		Version:      Version,
		ExportDate:   now.UTC(),
		Transactions: txs,
		Categories:   &cats,
		Settings:     patchFrom(st.Settings),
	}
}

// Filename is the default name for a backup exported at now.
func Filename(now time.Time) string {
	return "expense_tracker_backup_" + now.Format("2006-01-02") + ".json"
}

// Encode writes f as indented JSON.
func Encode(w io.Writer, f File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// Decode parses a backup file. It does not validate the contents.
func Decode(r io.Reader) (File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	return f, nil
}
