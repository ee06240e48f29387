package main

import (
	"github.com/Rshep3087/pocketbook/config"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// palette holds the fallback colors for one theme mode.
type palette struct {
	primary, errorC, success, warning, muted, income, expense, border, background, text, secondary string
}

var (
	darkPalette = palette{
		primary: "#ffd644", errorC: "#ff0000", success: "#22ba46", warning: "#e0a951",
		muted: "#7f7d78", income: "#00ff00", expense: "#ff5f5f", border: "#7D56F4",
		background: "#7D56F4", text: "#FAFAFA", secondary: "#888888",
	}
	lightPalette = palette{
		primary: "#5a3fc0", errorC: "#c00000", success: "#1a7f37", warning: "#b35900",
		muted: "#6e6e6e", income: "#1a7f37", expense: "#c00000", border: "#5a3fc0",
		background: "#e8e2ff", text: "#1a1a1a", secondary: "#555555",
	}
)

// newTheme creates a Theme from config.Colors on top of the palette for
// mode, which is the theme stored in the ledger settings.
func newTheme(colors config.Colors, mode string) Theme {
	p := darkPalette
	if mode == ledger.ThemeLight {
		p = lightPalette
	}
	return Theme{
		Primary:       parseColor(colors.Primary, p.primary),
		Error:         parseColor(colors.Error, p.errorC),
		Success:       parseColor(colors.Success, p.success),
		Warning:       parseColor(colors.Warning, p.warning),
		Muted:         parseColor(colors.Muted, p.muted),
		Income:        parseColor(colors.Income, p.income),
		Expense:       parseColor(colors.Expense, p.expense),
		Border:        parseColor(colors.Border, p.border),
		Background:    parseColor(colors.Background, p.background),
		Text:          parseColor(colors.Text, p.text),
		SecondaryText: parseColor(colors.SecondaryText, p.secondary),
	}
}

// parseColor parses a color string (hex or ANSI) and returns a lipgloss.Color
// Falls back to defaultColor if parsing fails or input is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	// lipgloss.Color accepts both hex colors ("#ff0000") and ANSI codes ("21")
	return lipgloss.Color(colorStr)
}
