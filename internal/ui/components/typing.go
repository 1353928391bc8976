// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusionchat/fusion-tui/internal/ui/styles"
)

// typingFrames cycles the three-dot indicator shown while the contact
// is composing a reply.
var typingFrames = []string{"●  ", "●● ", "●●●", " ●●", "  ●", "   "}

// TypingFrameInterval is how often the indicator advances a frame.
const TypingFrameInterval = 250 * time.Millisecond

// TypingTickMsg advances the typing animation by one frame.
type TypingTickMsg struct{}

// Typing is the animated "contact is typing" indicator.
type Typing struct {
	theme  *styles.Theme
	frame  int
	active bool
}

// NewTyping creates an inactive typing indicator.
func NewTyping(theme *styles.Theme) Typing {
	return Typing{theme: theme}
}

// Start activates the indicator and returns the first tick command.
func (ty *Typing) Start() tea.Cmd {
	ty.active = true
	ty.frame = 0
	return ty.tick()
}

// Stop deactivates the indicator.
func (ty *Typing) Stop() {
	ty.active = false
}

// Active reports whether the indicator is running.
func (ty Typing) Active() bool {
	return ty.active
}

// Update advances the animation on tick messages while active.
func (ty *Typing) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(TypingTickMsg); !ok {
		return nil
	}
	if !ty.active {
		return nil
	}
	ty.frame = (ty.frame + 1) % len(typingFrames)
	return ty.tick()
}

// View renders the current frame, or an empty string when inactive.
func (ty Typing) View() string {
	if !ty.active {
		return ""
	}
	return ty.theme.Typing.Render(typingFrames[ty.frame] + " typing")
}

func (ty Typing) tick() tea.Cmd {
	return tea.Tick(TypingFrameInterval, func(time.Time) tea.Msg {
		return TypingTickMsg{}
	})
}
