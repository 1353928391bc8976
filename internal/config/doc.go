// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// fusion.
//
// Configuration is TOML with sensible defaults and environment
// variable overrides. Locations, in order of precedence:
//
//   - environment variables (FUSION_*, GEMINI_API_KEY)
//   - ~/.fusion/config.toml
//   - built-in defaults
//
// A file watcher can reload the global config when the file changes
// on disk, so edits apply without restarting the app.
package config
