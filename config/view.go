package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 50},
			{Title: "Description", Width: 40},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

// displayPath shortens paths under the home directory to ~.
func displayPath(path string) string {
	if path == "" {
		return "(not set)"
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, home); ok && (rel == "" || rel[0] == filepath.Separator) {
		return "~" + rel
	}
	return path
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Storage Backend",
			config.Storage.Backend,
			"Where the ledger is kept",
		},
		{
			"Database",
			displayPath(config.Storage.Path),
			"SQLite database file",
		},
		{
			"Config File",
			displayPath(config.ConfigFile),
			"File these settings were read from",
		},
	}

	for _, c := range config.Colors.overrides() {
		rows = append(rows, table.Row{"Color " + c[0], c[1], "Dashboard palette override"})
	}

	m.configTable.SetRows(rows)
}

// Rows returns the rows currently shown.
func (m Model) Rows() []table.Row {
	return m.configTable.Rows()
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
