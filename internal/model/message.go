// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser    Sender = "user"
	SenderContact Sender = "contact"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderContact:
		return "Contact"
	default:
		return string(s)
	}
}

// =============================================================================
// STATUS TYPE
// =============================================================================

// Status is the delivery state of a message. Statuses are ordered and
// only ever move forward: sent -> delivered -> read.
type Status int

const (
	StatusSent Status = iota
	StatusDelivered
	StatusRead
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusDelivered:
		return "delivered"
	case StatusRead:
		return "read"
	default:
		return "unknown"
	}
}

// Ticks returns the receipt indicator shown next to outgoing messages.
func (s Status) Ticks() string {
	switch s {
	case StatusSent:
		return "✓"
	case StatusDelivered, StatusRead:
		return "✓✓"
	default:
		return ""
	}
}

// =============================================================================
// CONTENT TYPE
// =============================================================================

// ContentType is the kind of payload a message carries. Only text is
// produced by the conversation flow; the other kinds are declared for
// the wire model but never constructed.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVoice ContentType = "voice"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single chat turn.
type Message struct {
	ID        string      `json:"id"`
	Sender    Sender      `json:"sender"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
	Status    Status      `json:"status"`
	Type      ContentType `json:"type"`
}

// NewMessage creates a new text message with a generated ID.
func NewMessage(sender Sender, text string) *Message {
	return &Message{
		ID:        generateID(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
		Status:    StatusSent,
		Type:      ContentText,
	}
}

// NewUserMessage creates an outgoing user message with status sent.
func NewUserMessage(text string) *Message {
	return NewMessage(SenderUser, text)
}

// NewContactMessage creates an incoming contact message. Replies land
// already read: the user is the only reader and the room is rendering.
func NewContactMessage(text string) *Message {
	msg := NewMessage(SenderContact, text)
	msg.Status = StatusRead
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Advance moves the delivery status forward. Backward transitions are
// ignored so a status never regresses.
func (m *Message) Advance(s Status) {
	if s > m.Status {
		m.Status = s
	}
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no text.
func (m *Message) IsEmpty() bool {
	return len(m.Text) == 0
}

// Clock returns the timestamp formatted for the message bubble.
func (m *Message) Clock() string {
	return m.Timestamp.Format("15:04")
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID. Collisions within a session
// are not possible short of a crypto/rand failure.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
