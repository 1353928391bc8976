// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry is the local observability sink.
//
// Gateway failures, empty-reply substitutions, and turn latencies are
// recorded to a SQLite database under ~/.fusion/. The sink is strictly
// one-way: nothing in the conversation flow ever reads from it, and a
// disabled or broken sink degrades to a no-op rather than surfacing
// errors to the UI.
package telemetry
