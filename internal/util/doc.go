// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the fusion TUI.
//
// This package contains common helper functions used throughout the
// application for string handling and terminal display:
//
//   - IsBlank: whitespace-only input detection
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth / StringWidth: display-width aware helpers
//   - Redact: privacy-mode masking of message text
package util
