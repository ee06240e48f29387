package main

import (
	"testing"

	"github.com/Rshep3087/pocketbook/config"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme(t *testing.T) {
	colors := config.Colors{
		Primary:       "#ff0000",
		Error:         "21",
		SecondaryText: "245",
	}

	theme := newTheme(colors, ledger.ThemeDark)

	be.Equal(t, lipgloss.Color("#ff0000"), theme.Primary)
	be.Equal(t, lipgloss.Color("21"), theme.Error)
	be.Equal(t, lipgloss.Color("245"), theme.SecondaryText)
	be.Equal(t, lipgloss.Color(darkPalette.income), theme.Income)
}

func TestNewThemeModes(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want palette
	}{
		{"dark", ledger.ThemeDark, darkPalette},
		{"light", ledger.ThemeLight, lightPalette},
		{"unknown falls back to dark", "sepia", darkPalette},
		{"empty falls back to dark", "", darkPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := newTheme(config.Colors{}, tt.mode)
			be.Equal(t, lipgloss.Color(tt.want.primary), theme.Primary)
			be.Equal(t, lipgloss.Color(tt.want.text), theme.Text)
			be.Equal(t, lipgloss.Color(tt.want.expense), theme.Expense)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name         string
		colorStr     string
		defaultColor string
		expected     lipgloss.Color
	}{
		{"hex color", "#ff0000", "#000000", lipgloss.Color("#ff0000")},
		{"ansi color", "21", "#000000", lipgloss.Color("21")},
		{"empty string", "", "#000000", lipgloss.Color("#000000")},
		{"invalid color still accepted", "invalid", "#000000", lipgloss.Color("invalid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, parseColor(tt.colorStr, tt.defaultColor))
		})
	}
}
