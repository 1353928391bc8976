// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fusionchat/fusion-tui/internal/ui/styles"
)

// Shortcut is one key hint rendered in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom hint line shared by every screen.
type StatusBar struct {
	theme *styles.Theme
}

// NewStatusBar creates a status bar bound to the theme.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{theme: theme}
}

// Render produces the status line: shortcuts on the left and an
// optional context label (username, model name) on the right.
func (s StatusBar) Render(width int, label string, shortcuts []Shortcut) string {
	t := s.theme

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts, t.ShortcutKey.Render(sc.Key)+" "+t.ShortcutDesc.Render(sc.Desc))
	}
	left := strings.Join(parts, t.ShortcutDesc.Render(" · "))

	right := ""
	if label != "" {
		right = t.ShortcutDesc.Render(label)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return t.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
