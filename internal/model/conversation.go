// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fusionchat/fusion-tui/internal/gemini"
)

// DefaultHistoryLimit is the default cap on how many prior turns are
// replayed to the language service per request. The store itself is
// unbounded for the session; only the outbound history is capped.
const DefaultHistoryLimit = 64

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the append-only message store for one session.
// Insertion order is display order. It is not safe for concurrent use;
// all mutation happens on the UI event loop.
type Conversation struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewConversation creates an empty conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the store. Callers are
// responsible for constructing well-formed messages; nothing is
// validated or deduplicated here.
func (c *Conversation) Append(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AppendUserMessage creates and appends a user message.
func (c *Conversation) AppendUserMessage(text string) *Message {
	msg := NewUserMessage(text)
	c.Append(msg)
	return msg
}

// AppendContactMessage creates and appends a contact message.
func (c *Conversation) AppendContactMessage(text string) *Message {
	msg := NewContactMessage(text)
	c.Append(msg)
	return msg
}

// Snapshot returns the current ordered sequence for rendering. The
// returned slice is a copy; appending to the conversation after the
// call does not mutate it.
func (c *Conversation) Snapshot() []*Message {
	out := make([]*Message, len(c.Messages))
	copy(out, c.Messages)
	return out
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// GATEWAY CONVERSION
// =============================================================================

// History converts the store into role-tagged turns for the gateway,
// keeping at most limit turns counted from the end. A limit <= 0 falls
// back to DefaultHistoryLimit. The new prompt is not part of the
// store yet when this runs, so the result is exactly the prior
// conversation.
func (c *Conversation) History(limit int) []gemini.Turn {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	start := 0
	if len(c.Messages) > limit {
		start = len(c.Messages) - limit
	}

	turns := make([]gemini.Turn, 0, len(c.Messages)-start)
	for _, msg := range c.Messages[start:] {
		if msg.Text == "" {
			continue
		}

		role := gemini.RoleUser
		if msg.Sender == SenderContact {
			role = gemini.RoleModel
		}
		turns = append(turns, gemini.NewTurn(role, msg.Text))
	}

	return turns
}
