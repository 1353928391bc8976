// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the generative-language
// API and the reply gateway built on top of it.
//
// The package has two layers:
//
//   - Client speaks the generateContent wire protocol and returns
//     typed errors (connection, timeout, unauthorized, blocked, ...).
//   - Gateway wraps one Client call per conversation turn and absorbs
//     every failure: GetReply always resolves to a non-empty reply
//     string and never propagates an error to the caller. Failures go
//     to the observability sink only.
//
// The system instruction and sampling temperature are fixed constants
// of the product, not runtime configuration.
package gemini
