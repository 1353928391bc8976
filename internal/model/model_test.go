// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"

	"github.com/fusionchat/fusion-tui/internal/gemini"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.Sender != SenderUser {
		t.Errorf("Sender = %v, want %v", msg.Sender, SenderUser)
	}
	if msg.Text != "hello" {
		t.Errorf("Text = %q, want %q", msg.Text, "hello")
	}
	if msg.Status != StatusSent {
		t.Errorf("Status = %v, want %v", msg.Status, StatusSent)
	}
	if msg.Type != ContentText {
		t.Errorf("Type = %v, want %v", msg.Type, ContentText)
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID = %q, want msg_ prefix", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestNewContactMessage(t *testing.T) {
	msg := NewContactMessage("hey! 😄")

	if msg.Sender != SenderContact {
		t.Errorf("Sender = %v, want %v", msg.Sender, SenderContact)
	}
	if msg.Status != StatusRead {
		t.Errorf("Status = %v, want %v", msg.Status, StatusRead)
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestStatusAdvance(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want Status
	}{
		{"sent to delivered", StatusSent, StatusDelivered, StatusDelivered},
		{"sent to read", StatusSent, StatusRead, StatusRead},
		{"delivered to read", StatusDelivered, StatusRead, StatusRead},
		{"read stays read", StatusRead, StatusSent, StatusRead},
		{"delivered ignores sent", StatusDelivered, StatusSent, StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewUserMessage("x")
			msg.Status = tt.from
			msg.Advance(tt.to)
			if msg.Status != tt.want {
				t.Errorf("Advance(%v) from %v = %v, want %v", tt.to, tt.from, msg.Status, tt.want)
			}
		})
	}
}

func TestStatusTicks(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSent, "✓"},
		{StatusDelivered, "✓✓"},
		{StatusRead, "✓✓"},
	}

	for _, tt := range tests {
		if got := tt.status.Ticks(); got != tt.want {
			t.Errorf("Ticks(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestMessagePreview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hi there", 20, "hi there"},
		{"long text truncated", strings.Repeat("a", 30), 10, strings.Repeat("a", 7) + "..."},
		{"exact length unchanged", strings.Repeat("b", 10), 10, strings.Repeat("b", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewUserMessage(tt.text)
			if got := msg.Preview(tt.maxLen); got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.maxLen, got, tt.want)
			}
		})
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversationAppendOrder(t *testing.T) {
	conv := NewConversation()

	conv.AppendUserMessage("one")
	conv.AppendContactMessage("two")
	conv.AppendUserMessage("three")

	snap := conv.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Len = %d, want 3", len(snap))
	}

	wantTexts := []string{"one", "two", "three"}
	wantSenders := []Sender{SenderUser, SenderContact, SenderUser}
	for i, msg := range snap {
		if msg.Text != wantTexts[i] {
			t.Errorf("message %d text = %q, want %q", i, msg.Text, wantTexts[i])
		}
		if msg.Sender != wantSenders[i] {
			t.Errorf("message %d sender = %v, want %v", i, msg.Sender, wantSenders[i])
		}
	}
}

func TestConversationSnapshotIsCopy(t *testing.T) {
	conv := NewConversation()
	conv.AppendUserMessage("one")

	snap := conv.Snapshot()
	conv.AppendContactMessage("two")

	if len(snap) != 1 {
		t.Errorf("snapshot grew to %d after append, want 1", len(snap))
	}
	if conv.Len() != 2 {
		t.Errorf("Len = %d, want 2", conv.Len())
	}
}

func TestConversationLastMessage(t *testing.T) {
	conv := NewConversation()

	if conv.LastMessage() != nil {
		t.Error("LastMessage on empty conversation should be nil")
	}

	conv.AppendUserMessage("first")
	conv.AppendContactMessage("second")

	last := conv.LastMessage()
	if last == nil || last.Text != "second" {
		t.Errorf("LastMessage = %v, want text %q", last, "second")
	}
}

func TestConversationHistory(t *testing.T) {
	conv := NewConversation()
	conv.AppendUserMessage("hi")
	conv.AppendContactMessage("hey! 😄")
	conv.AppendUserMessage("how are you?")

	history := conv.History(DefaultHistoryLimit)
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}

	wantRoles := []string{gemini.RoleUser, gemini.RoleModel, gemini.RoleUser}
	for i, turn := range history {
		if turn.Role != wantRoles[i] {
			t.Errorf("turn %d role = %q, want %q", i, turn.Role, wantRoles[i])
		}
	}
	if history[1].Text() != "hey! 😄" {
		t.Errorf("turn 1 text = %q, want %q", history[1].Text(), "hey! 😄")
	}
}

func TestConversationHistoryLimit(t *testing.T) {
	conv := NewConversation()
	for i := 0; i < 10; i++ {
		conv.AppendUserMessage("msg")
	}

	history := conv.History(4)
	if len(history) != 4 {
		t.Errorf("history length = %d, want 4", len(history))
	}
}

func TestConversationHistorySkipsEmpty(t *testing.T) {
	conv := NewConversation()
	conv.AppendUserMessage("hello")
	conv.Append(NewContactMessage(""))
	conv.AppendUserMessage("still there?")

	history := conv.History(DefaultHistoryLimit)
	if len(history) != 2 {
		t.Errorf("history length = %d, want 2 (empty message skipped)", len(history))
	}
}
