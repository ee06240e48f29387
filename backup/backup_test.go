package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/Rshep3087/pocketbook/storage"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

var now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func tx(id string, typ ledger.Type, amount int64, category, date string) ledger.Transaction {
	return ledger.Transaction{
		ID:        id,
		Type:      typ,
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Date:      date,
		CreatedAt: now,
	}
}

func ids(txs []ledger.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func names(cats []ledger.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func currentState() ledger.State {
	return ledger.State{
		Transactions: []ledger.Transaction{
			tx("a", ledger.Expense, 10, "Food", "2024-03-01"),
			tx("b", ledger.Income, 100, "Salary", "2024-03-01"),
		},
		Categories: ledger.DefaultCategories(),
		Settings:   ledger.DefaultSettings(),
	}
}

func TestEncodeDecode(t *testing.T) {
	st := currentState()
	st.Settings.MonthlyBudget = decimal.NewFromInt(1000)

	var buf bytes.Buffer
	be.NilErr(t, Encode(&buf, Export(st, now)))
	be.In(t, `"version": "1.0"`, buf.String())
	be.In(t, `"amount": 10,`, buf.String())
	be.In(t, `"monthlyBudget": 1000`, buf.String())

	f, err := Decode(&buf)
	be.NilErr(t, err)
	be.Equal(t, Version, f.Version)
	be.Equal(t, now, f.ExportDate)
	be.AllEqual(t, []string{"a", "b"}, ids(f.Transactions))
	be.Equal(t, 7, len(f.Categories.Expense))
	be.Equal(t, "INR", *f.Settings.Currency)
	be.NilErr(t, Validate(f))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"))
	be.True(t, errors.Is(err, ErrInvalidBackup))
}

func TestValidate(t *testing.T) {
	cats := ledger.DefaultCategories()
	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{
			name:    "nothing to import",
			file:    File{Version: Version},
			wantErr: "neither transactions nor categories",
		},
		{
			name: "categories only",
			file: File{Categories: &cats},
		},
		{
			name: "empty transactions is still present",
			file: File{Transactions: []ledger.Transaction{}},
		},
		{
			name:    "missing id",
			file:    File{Transactions: []ledger.Transaction{tx("", ledger.Expense, 1, "Food", "2024-01-01")}},
			wantErr: "missing id",
		},
		{
			name:    "bad amount",
			file:    File{Transactions: []ledger.Transaction{tx("x", ledger.Expense, 0, "Food", "2024-01-01")}},
			wantErr: "amount must be positive",
		},
		{
			name:    "bad type",
			file:    File{Transactions: []ledger.Transaction{tx("x", "refund", 1, "Food", "2024-01-01")}},
			wantErr: "unknown type",
		},
		{
			name:    "bad date",
			file:    File{Transactions: []ledger.Transaction{tx("x", ledger.Expense, 1, "Food", "1/1/2024")}},
			wantErr: "not YYYY-MM-DD",
		},
		{
			name: "category without name",
			file: File{Categories: &ledger.CategorySet{
				Expense: []ledger.Category{{ID: "x"}},
			}},
			wantErr: "missing name",
		},
		{
			name: "category in the wrong partition",
			file: File{Categories: &ledger.CategorySet{
				Income: []ledger.Category{{ID: "x", Name: "X", Type: ledger.Expense}},
			}},
			wantErr: "filed under",
		},
		{
			name: "unknown currency",
			file: File{
				Transactions: []ledger.Transaction{},
				Settings:     &SettingsPatch{Currency: ptr("EUR")},
			},
			wantErr: "unknown currency",
		},
		{
			name: "unknown theme",
			file: File{
				Transactions: []ledger.Transaction{},
				Settings:     &SettingsPatch{Theme: ptr("solarized")},
			},
			wantErr: "theme must be",
		},
		{
			name: "currency and theme in any case",
			file: File{
				Transactions: []ledger.Transaction{},
				Settings:     &SettingsPatch{Currency: ptr(" usd "), Theme: ptr("Light")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file)
			if tt.wantErr == "" {
				be.NilErr(t, err)
				return
			}
			be.True(t, errors.Is(err, ErrInvalidBackup))
			be.In(t, tt.wantErr, err.Error())
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestSettingsPatchApplyCanonical(t *testing.T) {
	p := SettingsPatch{Currency: ptr(" usd "), Theme: ptr("Light")}
	be.NilErr(t, Validate(File{Transactions: []ledger.Transaction{}, Settings: &p}))

	s := p.Apply(ledger.DefaultSettings())
	be.Equal(t, "USD", s.Currency)
	be.Equal(t, ledger.ThemeLight, s.Theme)
}

func TestReplace(t *testing.T) {
	imported := []ledger.Transaction{
		tx("x", ledger.Expense, 5, "Rent", "2024-02-01"),
		tx("y", ledger.Expense, 6, "Rent", "2024-02-02"),
	}

	t.Run("transactions and settings", func(t *testing.T) {
		f := File{
			Transactions: imported,
			Settings:     &SettingsPatch{MonthlyBudget: ptr(decimal.NewFromInt(500))},
		}
		cur := currentState()
		cur.Settings.Currency = "USD"

		next, res, err := Reconcile(cur, f, Replace)
		be.NilErr(t, err)
		be.AllEqual(t, []string{"x", "y"}, ids(next.Transactions))
		be.Equal(t, 2, res.TransactionsAdded)
		// absent categories fall back to the built-ins
		be.Equal(t, 7, len(next.Categories.Expense))
		// settings are shallow-merged
		be.Equal(t, "USD", next.Settings.Currency)
		be.True(t, next.Settings.MonthlyBudget.Equal(decimal.NewFromInt(500)))
	})

	t.Run("absent transactions empty the ledger", func(t *testing.T) {
		cats := ledger.CategorySet{Expense: []ledger.Category{{ID: "pets", Name: "Pets"}}}
		next, _, err := Reconcile(currentState(), File{Categories: &cats}, Replace)
		be.NilErr(t, err)
		be.Equal(t, 0, len(next.Transactions))
		be.AllEqual(t, []string{"Pets"}, names(next.Categories.Expense))
		be.Equal(t, ledger.Expense, next.Categories.Expense[0].Type)
		be.Equal(t, 0, len(next.Categories.Income))
	})
}

func TestMerge(t *testing.T) {
	cur := currentState()
	cats := ledger.CategorySet{
		Expense: []ledger.Category{
			{ID: "food", Name: "FOOD ", IsDefault: true}, // same name, different case
			{ID: "rent", Name: "Housing"},                // new name, clashing id
			{ID: "pets_1", Name: "Pets"},
		},
		Income: []ledger.Category{
			{ID: "gifts_1", Name: "Gifts"},
		},
	}
	f := File{
		Transactions: []ledger.Transaction{
			tx("b", ledger.Income, 100, "Salary", "2024-03-01"), // already present
			tx("c", ledger.Expense, 7, "Pets", "2024-03-02"),
			tx("c", ledger.Expense, 7, "Pets", "2024-03-02"), // duplicated within the file
			tx("d", ledger.Expense, 8, "Pets", "2024-03-03"),
		},
		Categories: &cats,
		Settings:   &SettingsPatch{Currency: ptr("USD")},
	}

	next, res, err := Reconcile(cur, f, Merge)
	be.NilErr(t, err)

	// existing first, then new ones in file order
	be.AllEqual(t, []string{"a", "b", "c", "d"}, ids(next.Transactions))
	be.Equal(t, 2, res.TransactionsAdded)
	be.Equal(t, 2, res.TransactionsSkipped)

	be.Equal(t, 9, len(next.Categories.Expense))
	be.Equal(t, 6, len(next.Categories.Income))
	be.Equal(t, 3, res.CategoriesAdded)
	be.Equal(t, 1, res.CategoriesSkipped)

	housing := next.Categories.Expense[7]
	be.Equal(t, "Housing", housing.Name)
	be.Equal(t, "rent_2", housing.ID)
	be.False(t, housing.IsDefault)
	be.Equal(t, ledger.Expense, housing.Type)

	// settings are never touched by a merge
	be.Equal(t, "INR", next.Settings.Currency)
	be.False(t, res.SettingsApplied)

	// the input state is not modified
	be.Equal(t, 2, len(cur.Transactions))
	be.Equal(t, 7, len(cur.Categories.Expense))
}

func TestMergeIDsAreUnion(t *testing.T) {
	cur := currentState()
	var imported []ledger.Transaction
	for i := range 10 {
		imported = append(imported, tx(fmt.Sprintf("id-%d", i%4), ledger.Expense, 1, "Food", "2024-01-01"))
	}
	imported = append(imported, tx("a", ledger.Expense, 1, "Food", "2024-01-01"))

	next, _, err := Reconcile(cur, File{Transactions: imported}, Merge)
	be.NilErr(t, err)

	seen := map[string]int{}
	for _, x := range next.Transactions {
		seen[x.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s appears %d times", id, n)
		}
	}
	// a, b plus id-0..id-3
	be.Equal(t, 6, len(next.Transactions))
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	store, err := ledger.Open(ctx, storage.NewMemory())
	be.NilErr(t, err)
	_, err = store.AddTransaction(ctx, ledger.TransactionInput{
		Type: ledger.Expense, Amount: decimal.NewFromInt(3), Category: "Food", Date: "2024-03-01",
	})
	be.NilErr(t, err)

	t.Run("invalid file changes nothing", func(t *testing.T) {
		bad := File{Transactions: []ledger.Transaction{tx("x", ledger.Expense, -1, "Food", "2024-01-01")}}
		_, err := Import(ctx, store, bad, Replace)
		be.True(t, errors.Is(err, ErrInvalidBackup))
		be.Equal(t, 1, len(store.Transactions()))
	})

	t.Run("replace", func(t *testing.T) {
		f := File{Transactions: []ledger.Transaction{
			tx("x", ledger.Expense, 5, "Rent", "2024-02-01"),
			tx("y", ledger.Income, 9, "Salary", "2024-02-02"),
		}}
		res, err := Import(ctx, store, f, Replace)
		be.NilErr(t, err)
		be.Equal(t, Replace, res.Mode)
		be.AllEqual(t, []string{"x", "y"}, ids(store.Transactions()))
	})

	t.Run("merge the same file again adds nothing", func(t *testing.T) {
		f := Export(store.State(), now)
		res, err := Import(ctx, store, f, Merge)
		be.NilErr(t, err)
		be.Equal(t, 0, res.TransactionsAdded)
		be.Equal(t, 2, res.TransactionsSkipped)
		be.Equal(t, 0, res.CategoriesAdded)
		be.Equal(t, 2, len(store.Transactions()))
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" MERGE ")
	be.NilErr(t, err)
	be.Equal(t, Merge, m)

	_, err = ParseMode("overwrite")
	be.Nonzero(t, err)
}

func TestWriteCSV(t *testing.T) {
	txs := []ledger.Transaction{
		tx("1", ledger.Expense, 250, "Food", "2024-03-02"),
		tx("2", ledger.Income, 1000, "Salary", "2024-03-01"),
	}
	txs[0].Note = `Dinner, with "friends"`
	txs[1].Amount = decimal.RequireFromString("1000.5")

	var buf bytes.Buffer
	be.NilErr(t, WriteCSV(&buf, txs))

	want := "Date,Type,Category,Amount,Note\n" +
		"2024-03-02,expense,Food,250,\"Dinner, with \"\"friends\"\"\"\n" +
		"2024-03-01,income,Salary,1000.5,\n"
	be.Equal(t, want, buf.String())
}

func TestFilename(t *testing.T) {
	be.Equal(t, "expense_tracker_backup_2024-03-15.json", Filename(now))
}
