// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSinkRecordsEvents(t *testing.T) {
	sink, err := Open(filepath.Join(t.TempDir(), "telemetry.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sink.Close()

	sink.Event("gateway_failure", "connection refused")
	sink.TurnLatency(1200 * time.Millisecond)

	events, err := sink.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if events[0].Kind != "gateway_failure" || events[0].Detail != "connection refused" {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1].Kind != EventTurnLatency || events[1].Detail != "1.2s" {
		t.Errorf("event 1 = %+v", events[1])
	}
	for i, ev := range events {
		if ev.SessionID != sink.SessionID() {
			t.Errorf("event %d session = %q, want %q", i, ev.SessionID, sink.SessionID())
		}
	}
}

func TestNilSinkIsNoOp(t *testing.T) {
	var sink *Sink

	// None of these may panic.
	sink.Event("kind", "detail")
	sink.TurnLatency(time.Second)
	if id := sink.SessionID(); id != "" {
		t.Errorf("SessionID = %q, want empty", id)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close = %v, want nil", err)
	}

	events, err := sink.Events()
	if err != nil || events != nil {
		t.Errorf("Events = %v, %v, want nil, nil", events, err)
	}
}

func TestSinkSessionsIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	first.Event("empty_reply", "")
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	events, err := second.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("new session sees %d old events, want 0", len(events))
	}
}
