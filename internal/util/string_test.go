// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{"a", false},
		{"  a  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"short unchanged", "hello", 10, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"unicode counted as runes", "héllo wörld", 8, "héllo..."},
		{"zero width", "hello", 0, ""},
		{"tiny budget", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := TruncateWidth("hello", 10); got != "hello" {
		t.Errorf("TruncateWidth short = %q, want unchanged", got)
	}
	got := TruncateWidth(strings.Repeat("x", 20), 10)
	if StringWidth(got) > 10 {
		t.Errorf("TruncateWidth result width = %d, want <= 10", StringWidth(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateWidth result = %q, want ellipsis suffix", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q, want %q", got, "ab   ")
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight overlong = %q, want unchanged", got)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "hi", "▒▒"},
		{"spaces kept", "a b", "▒ ▒"},
		{"newlines kept", "ab\ncd", "▒▒\n▒▒"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
