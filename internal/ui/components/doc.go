// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides small reusable render helpers shared by
// the fusion views: the room header, the status bar, and the typing
// indicator. Components are stateless except for animation frames and
// render against the shared theme.
package components
