// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package room

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusionchat/fusion-tui/internal/model"
	"github.com/fusionchat/fusion-tui/internal/ui/styles"
)

func newTestRoom() Model {
	m := New(styles.NewTheme(), "Gemini Fusion Assistant")
	m.SetSize(80, 24)
	return m
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestSubmitEmitsMessageAndClearsInput(t *testing.T) {
	m := newTestRoom()
	m.input.SetValue("hello")

	m, cmd := m.Update(enter())
	if cmd == nil {
		t.Fatal("enter produced no command")
	}

	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("command produced %T, want SubmitMsg", cmd())
	}
	if msg.Text != "hello" {
		t.Errorf("Text = %q, want %q", msg.Text, "hello")
	}
	if m.InputValue() != "" {
		t.Errorf("input = %q after submit, want empty", m.InputValue())
	}
}

func TestBlankSubmitIsNoOp(t *testing.T) {
	tests := []string{"", "   ", "\t"}

	for _, value := range tests {
		m := newTestRoom()
		m.input.SetValue(value)

		m, cmd := m.Update(enter())
		if cmd != nil {
			t.Errorf("enter on %q produced a command, want none", value)
		}
		if m.InputValue() != value {
			t.Errorf("input changed from %q to %q", value, m.InputValue())
		}
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	m := newTestRoom()
	m.input.SetValue("  hi there  ")

	_, cmd := m.Update(enter())
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	if msg := cmd().(SubmitMsg); msg.Text != "hi there" {
		t.Errorf("Text = %q, want trimmed", msg.Text)
	}
}

func TestEscapeEmitsBack(t *testing.T) {
	m := newTestRoom()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Errorf("command produced %T, want BackMsg", cmd())
	}
}

func TestCtrlPEmitsPrivacyToggle(t *testing.T) {
	m := newTestRoom()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if cmd == nil {
		t.Fatal("ctrl+p produced no command")
	}
	if _, ok := cmd().(TogglePrivacyMsg); !ok {
		t.Errorf("command produced %T, want TogglePrivacyMsg", cmd())
	}
}

func TestViewShowsEmptyStateBeforeMessages(t *testing.T) {
	m := newTestRoom()
	m.SetMessages(nil)

	view := m.View()
	if !strings.Contains(view, "ENCRYPTED END-TO-END") {
		t.Error("empty room should show the encryption notice")
	}
}

func TestViewRendersMessages(t *testing.T) {
	m := newTestRoom()
	m.SetMessages([]*model.Message{
		model.NewUserMessage("hello there"),
		model.NewContactMessage("hey! how are you?"),
	})

	view := m.View()
	if !strings.Contains(view, "hello there") {
		t.Error("view missing user message text")
	}
	if !strings.Contains(view, "hey! how are you?") {
		t.Error("view missing contact message text")
	}
	if strings.Contains(view, "ENCRYPTED END-TO-END") {
		t.Error("encryption notice shown with messages present")
	}
}

func TestPrivacyRedactsTranscript(t *testing.T) {
	m := newTestRoom()
	m.SetMessages([]*model.Message{model.NewUserMessage("secret plans")})
	m.SetPrivacy(true)

	view := m.View()
	if strings.Contains(view, "secret") {
		t.Error("privacy mode leaked message text")
	}
	if !strings.Contains(view, "▒") {
		t.Error("privacy mode should render block characters")
	}
}

func TestTypingIndicatorVisibleWhileAwaitingReply(t *testing.T) {
	m := newTestRoom()
	m.SetMessages([]*model.Message{model.NewUserMessage("hi")})

	cmd := m.SetTyping(true)
	if cmd == nil {
		t.Fatal("SetTyping(true) returned no tick command")
	}
	if !strings.Contains(m.View(), "typing") {
		t.Error("typing indicator not rendered")
	}

	m.SetTyping(false)
	if strings.Contains(m.View(), "typing") {
		t.Error("typing indicator still rendered after stop")
	}
}
