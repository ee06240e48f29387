package backup

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Rshep3087/pocketbook/ledger"
)

// CSVFilename is the default name for a CSV export.
const CSVFilename = "expense_tracker_export.csv"

var csvHeader = []string{"Date", "Type", "Category", "Amount", "Note"}

// WriteCSV writes one row per transaction in collection order. Fields with
// commas, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, txs []ledger.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txs {
		row := []string{t.Date, string(t.Type), t.Category, t.Amount.String(), t.Note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
