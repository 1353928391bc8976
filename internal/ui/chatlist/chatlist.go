// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatlist implements the conversation overview screen. One
// live assistant contact leads the list; a handful of placeholder
// contacts below it cannot be opened.
package chatlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fusionchat/fusion-tui/internal/ui/components"
	"github.com/fusionchat/fusion-tui/internal/ui/styles"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// GreetingPreview is shown for the assistant before any message exists.
const GreetingPreview = "Hi! I'm your hybrid AI assistant. Let's chat!"

const placeholderPreview = "Tap the assistant to start a real chat..."

// SelectedMsg is emitted when the assistant contact is opened.
type SelectedMsg struct{}

// BackMsg is emitted when the user leaves the list for the login screen.
type BackMsg struct{}

type contactItem struct {
	name    string
	preview string
	when    string
	live    bool
}

func (i contactItem) FilterValue() string { return i.name }
func (i contactItem) Title() string {
	if i.live {
		return i.name + " ●"
	}
	return i.name
}
func (i contactItem) Description() string { return i.preview + "  " + i.when }

// Model is the chat list screen state.
type Model struct {
	theme  *styles.Theme
	status components.StatusBar
	list   list.Model
	width  int
	height int
}

// New creates the chat list with the assistant contact on top.
func New(theme *styles.Theme, contactName string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = theme.ContactName
	delegate.Styles.SelectedDesc = theme.ContactPreview
	delegate.Styles.DimmedTitle = theme.ContactDisabled
	delegate.Styles.DimmedDesc = theme.ContactDisabled

	l := list.New(buildItems(contactName, ""), delegate, 80, 20)
	l.Title = "Chats"
	l.Styles.Title = theme.ListTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{
		theme:  theme,
		status: components.NewStatusBar(theme),
		list:   l,
	}
}

func buildItems(contactName, lastPreview string) []list.Item {
	preview := lastPreview
	if util.IsBlank(preview) {
		preview = GreetingPreview
	}

	items := []list.Item{
		contactItem{name: contactName, preview: preview, when: "Online", live: true},
	}
	for i := 1; i <= 5; i++ {
		items = append(items, contactItem{
			name:    fmt.Sprintf("Contact %d", i),
			preview: placeholderPreview,
			when:    "Yesterday",
		})
	}
	return items
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout bounds.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetWidth(width)
	m.list.SetHeight(height - 2)
}

// SetPreview refreshes the assistant row with the latest message text.
func (m *Model) SetPreview(contactName, lastPreview string) {
	m.list.SetItems(buildItems(contactName, lastPreview))
}

// Update handles navigation. Enter only opens the live assistant row;
// placeholder contacts swallow the keypress.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(contactItem)
			if !ok || !item.live {
				return m, nil
			}
			return m, func() tea.Msg { return SelectedMsg{} }
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list plus the status bar.
func (m Model) View() string {
	bar := m.status.Render(m.width, "", []components.Shortcut{
		{Key: "↑↓", Desc: "navigate"},
		{Key: "enter", Desc: "open"},
		{Key: "esc", Desc: "sign out"},
		{Key: "ctrl+c", Desc: "quit"},
	})
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), bar)
}
