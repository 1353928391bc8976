// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	kind       TEXT NOT NULL,
	detail     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
`

// Event kinds recorded beyond what the gateway reports.
const (
	EventTurnLatency = "turn_latency"
)

// =============================================================================
// SINK
// =============================================================================

// Sink records events for one app session. The zero-value / nil Sink
// is a valid no-op sink.
type Sink struct {
	mu        sync.Mutex
	db        *sql.DB
	sessionID string
}

// Event is one recorded row, used by tests and future tooling.
type Event struct {
	SessionID string
	Kind      string
	Detail    string
	CreatedAt time.Time
}

// Open creates (or opens) the event database at path and starts a new
// session. An empty path defaults to ~/.fusion/telemetry.db.
func Open(path string) (*Sink, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".fusion", "telemetry.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Sink{
		db:        db,
		sessionID: uuid.NewString(),
	}, nil
}

// SessionID returns the identifier of the current session.
func (s *Sink) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Event records one event. Errors are swallowed: the sink must never
// disturb the conversation flow it observes.
func (s *Sink) Event(kind, detail string) {
	if s == nil || s.db == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.Exec(
		"INSERT INTO events (session_id, kind, detail, created_at) VALUES (?, ?, ?, ?)",
		s.sessionID, kind, detail, time.Now().UTC(),
	)
}

// TurnLatency records how long one conversation turn took from submit
// to reply append.
func (s *Sink) TurnLatency(d time.Duration) {
	s.Event(EventTurnLatency, d.String())
}

// Events returns all events for the current session in insertion
// order.
func (s *Sink) Events() ([]Event, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT session_id, kind, detail, created_at FROM events WHERE session_id = ? ORDER BY id",
		s.sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.SessionID, &ev.Kind, &ev.Detail, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close releases the database handle.
func (s *Sink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
