// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware helpers preserve multi-byte characters. Display
// width uses go-runewidth so double-width (CJK) characters and emoji
// count correctly in terminal columns.

// IsBlank returns true if the string is empty or contains only
// whitespace characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TruncateRunes truncates a string to a maximum number of runes
// (characters). This is safe for UTF-8 strings as it counts characters,
// not bytes. If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width,
// appending an ellipsis when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal
// columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads a string with spaces to the given display width.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Redact masks message text for privacy mode. Every non-space
// character becomes a block so line lengths (and therefore bubble
// shapes) are preserved while the content is unreadable.
func Redact(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			sb.WriteRune('\n')
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		default:
			sb.WriteRune('▒')
		}
	}
	return sb.String()
}
