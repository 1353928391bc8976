// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import "context"

// SystemInstruction constrains the model's tone. It is a constant of
// the product, not runtime configuration.
const SystemInstruction = "You are an expert friend chatting on a messaging app like WhatsApp or Telegram. Keep your messages short, conversational, and friendly. Use emojis occasionally. Act as if you are the user's primary contact."

// Temperature is the fixed sampling temperature, favoring varied
// phrasing over determinism.
const Temperature = 0.9

// Canned replies for the two absorbed failure modes.
const (
	// PlaceholderReply substitutes for an empty or missing result.
	PlaceholderReply = "I'm not sure what to say, but I'm here!"

	// FallbackReply substitutes for any failure of the call itself.
	FallbackReply = "Oops, lost connection for a second. What were we saying?"
)

// Event kinds delivered to the Reporter.
const (
	EventGatewayFailure = "gateway_failure"
	EventEmptyReply     = "empty_reply"
)

// Reporter is the observability sink for gateway failures. A nil
// Reporter is valid and drops events.
type Reporter interface {
	Event(kind, detail string)
}

// =============================================================================
// GATEWAY
// =============================================================================

// Gateway turns conversation history plus a new prompt into a single
// reply string. It is the error-absorbing boundary of the app: GetReply
// never fails and never returns an empty string, so the conversation
// flow upstream has no error path at all.
type Gateway struct {
	client   *Client
	reporter Reporter
}

// NewGateway creates a gateway around the given client.
func NewGateway(client *Client, reporter Reporter) *Gateway {
	return &Gateway{
		client:   client,
		reporter: reporter,
	}
}

// Client returns the underlying client.
func (g *Gateway) Client() *Client {
	return g.client
}

// GetReply requests a reply for the prompt given the prior history.
// The prompt is appended as the final user turn before dispatch.
//
// On any failure of the call the underlying error goes to the reporter
// and the fixed fallback string is returned; an empty result is
// replaced by the fixed placeholder string. No retry, no caching.
func (g *Gateway) GetReply(ctx context.Context, history []Turn, prompt string) string {
	contents := make([]Turn, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, NewTurn(RoleUser, prompt))

	sys := NewTurn("", SystemInstruction)
	req := &GenerateRequest{
		Contents:          contents,
		SystemInstruction: &sys,
		GenerationConfig:  &GenerationConfig{Temperature: Temperature},
	}

	resp, err := g.client.GenerateContent(ctx, req)
	if err != nil {
		g.report(EventGatewayFailure, err.Error())
		return FallbackReply
	}

	text := resp.Text()
	if text == "" {
		g.report(EventEmptyReply, "service returned no usable text")
		return PlaceholderReply
	}

	return text
}

func (g *Gateway) report(kind, detail string) {
	if g.reporter != nil {
		g.reporter.Event(kind, detail)
	}
}
