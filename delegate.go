package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m model) selectedStyles(d *list.DefaultDelegate) {
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Primary).
		Foreground(m.theme.Primary).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = d.Styles.SelectedTitle.
		Foreground(m.theme.SecondaryText)
}

func (m model) newItemDelegate(keys *delegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	m.selectedStyles(&d)

	// pending is the id armed by the first delete press; a second press on
	// the same item deletes it.
	var pending string
	d.UpdateFunc = func(msg tea.Msg, listModel *list.Model) tea.Cmd {
		km, ok := msg.(tea.KeyMsg)
		if !ok {
			return nil
		}
		if !key.Matches(km, keys.remove) {
			pending = ""
			return nil
		}

		ti, ok := listModel.SelectedItem().(transactionItem)
		if !ok {
			return nil
		}
		if pending != ti.t.ID {
			pending = ti.t.ID
			return listModel.NewStatusMessage(m.styles.errorStyle.Render("Press x again to delete this transaction"))
		}
		pending = ""
		return m.deleteTransaction(ti.t)
	}

	help := []key.Binding{keys.remove}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

type delegateKeyMap struct {
	remove key.Binding
}

func (d delegateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.remove}
}

func (d delegateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{d.remove}}
}

func newDeleteKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
	}
}
