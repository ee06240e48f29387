package main

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/lipgloss"
)

// reportData is everything a printed report shows.
type reportData struct {
	Title     string
	Generated string
	Income    string
	Expense   string
	Balance   string
	Rows      []reportRow
}

type reportRow struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Note     string
}

// buildReport summarizes txs, which should already be narrowed to the
// reporting window.
func buildReport(title string, txs []ledger.Transaction, currency string, now time.Time) reportData {
	d := reportData{
		Title:     title,
		Generated: now.Format("2 January 2006"),
		Income:    ledger.FormatAmount(analytics.TotalByType(txs, ledger.Income), currency),
		Expense:   ledger.FormatAmount(analytics.TotalByType(txs, ledger.Expense), currency),
		Balance:   ledger.FormatAmount(analytics.Balance(txs), currency),
		Rows:      make([]reportRow, 0, len(txs)),
	}
	for _, t := range txs {
		note := t.Note
		if note == "" {
			note = "-"
		}
		d.Rows = append(d.Rows, reportRow{
			Date:     t.Date,
			Type:     string(t.Type),
			Category: t.Category,
			Amount:   ledger.FormatAmount(t.Amount, currency),
			Note:     note,
		})
	}
	return d
}

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	reportMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	reportBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("99")).
				Padding(0, 2).
				Align(lipgloss.Center)
)

func writeTextReport(w io.Writer, d reportData) error {
	box := func(label, value string) string {
		return reportBoxStyle.Render(reportMutedStyle.Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
	}

	tbl := createStyledTable("Date", "Type", "Category", "Amount", "Note")
	for _, r := range d.Rows {
		tbl.Row(r.Date, r.Type, r.Category, r.Amount, r.Note)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n\n%s\n",
		reportTitleStyle.Render(d.Title),
		reportMutedStyle.Render("Generated on "+d.Generated),
		lipgloss.JoinHorizontal(lipgloss.Top,
			box("TOTAL INCOME", d.Income), " ",
			box("TOTAL EXPENSE", d.Expense), " ",
			box("BALANCE", d.Balance)),
		tbl.Render(),
	)
	return err
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; padding: 40px; color: #0a0a0a; }
h1 { font-size: 24px; margin-bottom: 10px; }
.date { color: #8a8a8a; font-size: 14px; margin-bottom: 30px; }
.summary { display: flex; gap: 40px; margin-bottom: 40px; }
.summary-item { text-align: center; }
.summary-label { font-size: 12px; color: #8a8a8a; text-transform: uppercase; }
.summary-value { font-size: 24px; font-weight: 700; margin-top: 5px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 12px; text-align: left; border-bottom: 1px solid #e0e0e0; }
th { font-size: 12px; text-transform: uppercase; color: #8a8a8a; }
.income { color: #4a4a4a; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="date">Generated on {{.Generated}}</p>
<div class="summary">
<div class="summary-item"><div class="summary-label">Total Income</div><div class="summary-value">{{.Income}}</div></div>
<div class="summary-item"><div class="summary-label">Total Expense</div><div class="summary-value">{{.Expense}}</div></div>
<div class="summary-item"><div class="summary-label">Balance</div><div class="summary-value">{{.Balance}}</div></div>
</div>
<table>
<thead><tr><th>Date</th><th>Type</th><th>Category</th><th>Amount</th><th>Note</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Date}}</td><td>{{.Type}}</td><td>{{.Category}}</td><td class="{{.Type}}">{{.Amount}}</td><td>{{.Note}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

func writeHTMLReport(w io.Writer, d reportData) error {
	if err := reportTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
