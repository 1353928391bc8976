// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login implements the sign-in screen. It asks for a display
// name and emits SubmittedMsg once a non-blank name is entered.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fusionchat/fusion-tui/internal/ui/components"
	"github.com/fusionchat/fusion-tui/internal/ui/styles"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// SubmittedMsg is emitted when the user confirms a non-blank name.
type SubmittedMsg struct {
	Username string
}

// Model is the login screen state.
type Model struct {
	theme   *styles.Theme
	status  components.StatusBar
	input   textinput.Model
	warning string
	width   int
	height  int
}

// New creates the login screen.
func New(theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.CharLimit = 48
	ti.Width = 32
	ti.Prompt = "› "
	ti.PromptStyle = theme.InputPrompt
	ti.Focus()

	return Model{
		theme:  theme,
		status: components.NewStatusBar(theme),
		input:  ti,
	}
}

// Init starts the input caret blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the layout bounds.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetWarning shows a notice under the sign-in card, such as a missing
// API key hint. An empty string clears it.
func (m *Model) SetWarning(text string) {
	m.warning = text
}

// Reset clears the entered name and refocuses the input.
func (m *Model) Reset() {
	m.input.SetValue("")
	m.input.Focus()
}

// Update handles key input. Enter with a blank value does nothing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if util.IsBlank(name) {
			return m, nil
		}
		return m, func() tea.Msg {
			return SubmittedMsg{Username: name}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the centered sign-in card.
func (m Model) View() string {
	t := m.theme

	card := lipgloss.JoinVertical(lipgloss.Center,
		t.LoginTitle.Render("iChat Fusion"),
		"",
		t.LoginHint.Render("Sign in to continue"),
		"",
		t.InputContainer.Render(m.input.View()),
	)
	if m.warning != "" {
		card = lipgloss.JoinVertical(lipgloss.Center,
			card, "", t.Warning.Render(m.warning))
	}

	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, card)

	bar := m.status.Render(m.width, "", []components.Shortcut{
		{Key: "enter", Desc: "sign in"},
		{Key: "ctrl+c", Desc: "quit"},
	})

	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}
