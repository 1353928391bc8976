// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation:
// messages, senders, delivery status, and the append-only message store.
//
// The store is the single source of truth for the chat room. Messages
// are appended in the order they resolve and are never edited or
// removed for the lifetime of the session. Nothing here is persisted.
package model
