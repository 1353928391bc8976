// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package room implements the conversation screen: the scrollback of
// chat bubbles, the typing indicator, and the message composer.
//
// This file contains the Bubble Tea model and update loop. Rendering
// lives in view.go, key bindings in keys.go.
package room

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusionchat/fusion-tui/internal/model"
	"github.com/fusionchat/fusion-tui/internal/ui/components"
	"github.com/fusionchat/fusion-tui/internal/ui/styles"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmitMsg is emitted when the user sends a non-blank message.
type SubmitMsg struct {
	Text string
}

// BackMsg is emitted when the user returns to the chat list.
type BackMsg struct{}

// TogglePrivacyMsg is emitted when the user flips privacy mode.
type TogglePrivacyMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Model is the conversation screen state. The conversation itself is
// owned by the parent app; the room only renders a snapshot of it.
type Model struct {
	theme  *styles.Theme
	keys   KeyMap
	status components.StatusBar
	header components.Header
	typing components.Typing

	viewport viewport.Model
	input    textinput.Model

	contactName string
	privacy     bool
	messages    []*model.Message

	width  int
	height int
	ready  bool
}

// New creates the room screen.
func New(theme *styles.Theme, contactName string) Model {
	ti := textinput.New()
	ti.Placeholder = "iMessage"
	ti.CharLimit = 2000
	ti.Prompt = "› "
	ti.PromptStyle = theme.InputPrompt
	ti.Focus()

	return Model{
		theme:       theme,
		keys:        DefaultKeyMap(),
		status:      components.NewStatusBar(theme),
		header:      components.NewHeader(theme),
		typing:      components.NewTyping(theme),
		input:       ti,
		contactName: contactName,
	}
}

// Init starts the input caret blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the layout bounds and resizes the viewport.
// Layout: header (1) + viewport + input (2, top border) + status (1).
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - 4
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 6
	m.refreshViewport()
}

// SetMessages replaces the rendered transcript with a fresh snapshot
// and scrolls to the bottom.
func (m *Model) SetMessages(msgs []*model.Message) {
	m.messages = msgs
	m.refreshViewport()
	m.viewport.GotoBottom()
}

// SetTyping starts or stops the typing indicator and returns the tick
// command that drives the animation.
func (m *Model) SetTyping(on bool) tea.Cmd {
	if on {
		cmd := m.typing.Start()
		m.refreshViewport()
		m.viewport.GotoBottom()
		return cmd
	}
	m.typing.Stop()
	m.refreshViewport()
	return nil
}

// SetPrivacy flips the privacy redaction on the transcript.
func (m *Model) SetPrivacy(on bool) {
	m.privacy = on
	m.refreshViewport()
}

// Privacy reports whether privacy mode is on.
func (m Model) Privacy() bool {
	return m.privacy
}

// InputValue exposes the composer contents for tests.
func (m Model) InputValue() string {
	return m.input.Value()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles keys, typing ticks, and viewport scrolling. Enter
// with a blank composer does nothing. Submitting does not clear the
// typing state; the parent decides when the contact stops typing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TypingTickMsg:
		cmd := m.typing.Update(msg)
		if m.typing.Active() {
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			text := strings.TrimSpace(m.input.Value())
			if util.IsBlank(text) {
				return m, nil
			}
			m.input.SetValue("")
			return m, func() tea.Msg { return SubmitMsg{Text: text} }

		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Privacy):
			return m, func() tea.Msg { return TogglePrivacyMsg{} }

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
			key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
