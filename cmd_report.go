package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/spf13/cobra"
)

const (
	textReportFormat = "text"
	htmlReportFormat = "html"

	allPeriods = "all"
)

// newReportCmd creates the report command, a printable summary with every
// transaction in the chosen period.
func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print an income and expense report",
		Long: `Print a report with total income, total expense, the balance and every
transaction in the chosen period. HTML reports can be opened in a browser and
printed to PDF.

Examples:
  pocketbook report
  pocketbook report --period month --date 2024-03-01
  pocketbook report --format html --file report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != textReportFormat && format != htmlReportFormat {
				return fmt.Errorf("invalid report format: %s (must be %s or %s)", format, textReportFormat, htmlReportFormat)
			}

			now := a.now()
			criteria, title, err := reportWindow(cmd, now)
			if err != nil {
				return err
			}

			txs := a.store.Transactions()
			if !criteria.IsZero() {
				txs = analytics.Filter(txs, criteria)
			}
			if len(txs) == 0 {
				return errors.New("no transactions to report")
			}
			data := buildReport(title, txs, a.currency(), now)

			path, _ := cmd.Flags().GetString("file")
			return writeTo(cmd, path, func(w io.Writer) error {
				if format == htmlReportFormat {
					return writeHTMLReport(w, data)
				}
				return writeTextReport(w, data)
			})
		},
	}
	cmd.Flags().String("format", textReportFormat, "text or html")
	cmd.Flags().String("period", allPeriods, "all, month or year")
	cmd.Flags().String("date", "", "any date in the period (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringP("file", "f", "-", "output path, - for stdout")
	return cmd
}

func reportWindow(cmd *cobra.Command, now time.Time) (analytics.Criteria, string, error) {
	kind, _ := cmd.Flags().GetString("period")
	switch kind {
	case allPeriods:
		return analytics.Criteria{}, "Expense Report", nil
	case analytics.PeriodMonth, analytics.PeriodYear:
	default:
		return analytics.Criteria{}, "", fmt.Errorf("invalid period: %s (must be all, month or year)", kind)
	}

	anchor := now
	if s, _ := cmd.Flags().GetString("date"); s != "" {
		t, err := time.ParseInLocation(ledger.DateLayout, s, now.Location())
		if err != nil {
			return analytics.Criteria{}, "", fmt.Errorf("invalid date %q: %w", s, err)
		}
		anchor = t
	}

	p := analytics.NewPeriod(anchor, kind)
	return p.Criteria(), "Expense Report: " + p.Title(), nil
}
