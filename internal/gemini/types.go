// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import "strings"

// Turn roles understood by the generateContent endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Part is a single piece of turn content. Only text parts are sent.
type Part struct {
	Text string `json:"text"`
}

// Turn is one role-tagged entry in the conversation history.
type Turn struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// NewTurn creates a single-part text turn.
func NewTurn(role, text string) Turn {
	return Turn{
		Role:  role,
		Parts: []Part{{Text: text}},
	}
}

// Text returns the concatenated text of all parts.
func (t Turn) Text() string {
	var sb strings.Builder
	for _, p := range t.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// GenerationConfig contains sampling parameters for a request.
type GenerationConfig struct {
	Temperature     float64  `json:"temperature,omitempty"` // 0.0-2.0
	TopP            float64  `json:"topP,omitempty"`        // 0.0-1.0
	TopK            int      `json:"topK,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"` // 0 = provider default
	StopSequences   []string `json:"stopSequences,omitempty"`
}

// GenerateRequest is the request body for models/{model}:generateContent.
type GenerateRequest struct {
	Contents          []Turn            `json:"contents"`
	SystemInstruction *Turn             `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Candidate is one generated completion.
type Candidate struct {
	Content      Turn   `json:"content"`
	FinishReason string `json:"finishReason,omitempty"`
}

// PromptFeedback reports why a prompt produced no candidates.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateResponse is the response from generateContent.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Text returns the text of the first candidate, or "" if the response
// carried no usable candidate.
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Text()
}

// apiError is the error envelope the service returns on non-200 status.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
