// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fusionchat/fusion-tui/internal/ui/styles"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// Header renders the one-line room header: back hint, contact name,
// online marker, and the privacy indicator when active.
type Header struct {
	theme *styles.Theme
}

// NewHeader creates a header bound to the theme.
func NewHeader(theme *styles.Theme) Header {
	return Header{theme: theme}
}

// Render produces the header line for the given width.
func (h Header) Render(width int, contactName string, privacy bool) string {
	t := h.theme

	// Truncate the plain name before styling so width math never has
	// to cut through ANSI sequences.
	name := util.TruncateWidth(contactName, width/2)

	left := t.HeaderSubtitle.Render("‹ ") +
		t.HeaderTitle.Render(name) + " " +
		t.OnlineDot.Render("●") + " " +
		t.HeaderSubtitle.Render("online")

	right := ""
	if privacy {
		right = t.PrivacyOn.Render("◉ privacy")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return t.Header.Width(width).Render(line)
}
