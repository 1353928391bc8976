// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	OnlineDot      lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	ContactBubble lipgloss.Style
	BubbleMeta    lipgloss.Style
	Ticks         lipgloss.Style
	TicksRead     lipgloss.Style

	// ==========================================================================
	// LIST STYLES
	// ==========================================================================

	ListTitle       lipgloss.Style
	ContactName     lipgloss.Style
	ContactPreview  lipgloss.Style
	ContactDisabled lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	PrivacyOn    lipgloss.Style

	// ==========================================================================
	// MISC STYLES
	// ==========================================================================

	Typing     lipgloss.Style
	EmptyState lipgloss.Style
	Warning    lipgloss.Style
	LoginTitle lipgloss.Style
	LoginHint  lipgloss.Style
}

// NewTheme creates a theme adapted to the current terminal.
func NewTheme() *Theme {
	t := &Theme{
		IsDark:       lipgloss.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.OnlineDot = lipgloss.NewStyle().
		Foreground(Green)

	t.UserBubble = lipgloss.NewStyle().
		Background(BlueDeep).
		Foreground(TextInverse).
		Padding(0, 1)
	t.ContactBubble = lipgloss.NewStyle().
		Background(Bubble).
		Foreground(TextPrimary).
		Padding(0, 1)
	t.BubbleMeta = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.Ticks = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.TicksRead = lipgloss.NewStyle().
		Foreground(Blue)

	t.ListTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)
	t.ContactName = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)
	t.ContactPreview = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.ContactDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Faint(true)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Blue)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.PrivacyOn = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Typing = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.EmptyState = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)
	t.Warning = lipgloss.NewStyle().
		Foreground(Amber)
	t.LoginTitle = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)
	t.LoginHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
