package main

import (
	"github.com/Rshep3087/pocketbook/overview"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	docStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	incomeStyle  lipgloss.Style
	expenseStyle lipgloss.Style
	mutedStyle   lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		incomeStyle:  lipgloss.NewStyle().Foreground(theme.Income),
		expenseStyle: lipgloss.NewStyle().Foreground(theme.Expense),
		mutedStyle:   lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// createOverviewStyles maps the theme onto the overview widget.
func createOverviewStyles(theme Theme) overview.Styles {
	return overview.Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(theme.Income),
		SpentStyle:    lipgloss.NewStyle().Foreground(theme.Expense),
		WarningStyle:  lipgloss.NewStyle().Foreground(theme.Warning),
		TreeRootStyle: lipgloss.NewStyle().Foreground(theme.Muted),
		BranchStyle:   lipgloss.NewStyle().Foreground(theme.SecondaryText),
		LeafStyle:     lipgloss.NewStyle().Foreground(theme.Primary),
		SummaryStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}
