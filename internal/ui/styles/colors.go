// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the fusion TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Blue - primary accent, outgoing message bubbles, actions
var Blue = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// BlueDeep - darker blue for bubble backgrounds
var BlueDeep = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#1E3A8A"}

// Green - online indicator, delivery ticks, success
var Green = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - privacy-mode indicator, danger states
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - warnings (missing API key notice)
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#18181B"}

// SurfaceDim - headers, footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F4F4F5", Dark: "#111113"}

// Bubble - incoming message bubble background
var Bubble = lipgloss.AdaptiveColor{Light: "#E4E4E7", Dark: "#27272A"}

// Overlay - borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E4E4E7", Dark: "#3F3F46"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#E4E4E7"}

// TextSecondary - labels, previews
var TextSecondary = lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#A1A1AA"}

// TextMuted - hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#71717A"}

// TextInverse - text on colored bubble backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
