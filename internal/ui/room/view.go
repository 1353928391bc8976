// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package room implements the conversation screen: the scrollback of
// chat bubbles, the typing indicator, and the message composer.
//
// This file contains the rendering logic: the transcript bubbles, the
// encrypted empty state, and the surrounding chrome.
package room

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/fusionchat/fusion-tui/internal/model"
	"github.com/fusionchat/fusion-tui/internal/ui/components"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the full room: header, transcript viewport, composer,
// and status bar.
func (m Model) View() string {
	if !m.ready || m.width == 0 {
		return "Loading..."
	}

	header := m.header.Render(m.width, m.contactName, m.privacy)
	input := m.theme.InputContainer.Width(m.width).Render(m.input.View())

	label := ""
	if m.privacy {
		label = "privacy on"
	}
	bar := m.status.Render(m.width, label, []components.Shortcut{
		{Key: "enter", Desc: "send"},
		{Key: "ctrl+p", Desc: "privacy"},
		{Key: "esc", Desc: "chats"},
		{Key: "ctrl+c", Desc: "quit"},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		input,
		bar,
	)
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func (m Model) renderTranscript() string {
	if len(m.messages) == 0 && !m.typing.Active() {
		return m.renderEmptyState()
	}

	blocks := make([]string, 0, len(m.messages)+1)
	for _, msg := range m.messages {
		blocks = append(blocks, m.renderBubble(msg))
	}
	if m.typing.Active() {
		blocks = append(blocks, m.typing.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderEmptyState shows the encryption notice before the first message.
func (m Model) renderEmptyState() string {
	notice := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.EmptyState.Render("🛡"),
		"",
		m.theme.EmptyState.Render("ENCRYPTED END-TO-END"),
		m.theme.EmptyState.Render("Messages are secured with advanced data protection."),
	)
	return lipgloss.Place(m.viewport.Width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center, notice)
}

// renderBubble renders one message: user bubbles right-aligned, contact
// bubbles left-aligned, each with a time and, for the user, delivery
// ticks.
func (m Model) renderBubble(msg *model.Message) string {
	maxBubble := m.width * 3 / 4
	if maxBubble < 16 {
		maxBubble = 16
	}

	text := msg.Text
	if m.privacy {
		text = util.Redact(text)
	}
	text = wordwrap.String(text, maxBubble-4)

	meta := m.theme.BubbleMeta.Render(msg.Clock())
	if msg.Sender == model.SenderUser {
		tick := m.theme.Ticks
		if msg.Status == model.StatusRead {
			tick = m.theme.TicksRead
		}
		meta += " " + tick.Render(msg.Status.Ticks())
	}

	var bubble string
	if msg.Sender == model.SenderUser {
		bubble = m.theme.UserBubble.MaxWidth(maxBubble).Render(text + "\n" + meta)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}
	bubble = m.theme.ContactBubble.MaxWidth(maxBubble).Render(text + "\n" + meta)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, bubble)
}
