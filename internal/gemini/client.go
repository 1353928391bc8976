// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the generative-language client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeMissingKey
	ErrTypeUnauthorized
	ErrTypeTimeout
	ErrTypeConnection
	ErrTypeInvalidResponse
	ErrTypeBlocked
)

// Sentinel errors for easy checking.
var (
	ErrMissingKey   = &ClientError{Type: ErrTypeMissingKey, Message: "API key is not set"}
	ErrUnauthorized = &ClientError{Type: ErrTypeUnauthorized, Message: "API key was rejected"}
	ErrTimeout      = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrBlocked      = &ClientError{Type: ErrTypeBlocked, Message: "prompt was blocked"}
)

// IsMissingKey checks if an error indicates no API key is configured.
func IsMissingKey(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeMissingKey
	}
	return errors.Is(err, ErrMissingKey)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the client.
type ClientConfig struct {
	// BaseURL of the generative-language service
	// (default: https://generativelanguage.googleapis.com)
	BaseURL string

	// APIKey authenticates every request. An empty key does not
	// prevent client construction; requests fail with ErrMissingKey.
	APIKey string

	// Model to generate with (default: "gemini-3-flash-preview")
	Model string

	// Timeout for requests (default: 30s). This is the only timeout
	// the client enforces.
	Timeout time.Duration
}

// Default client settings.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 30 * time.Second
)

// DefaultConfig returns the default client configuration. The API key
// is left empty; callers fill it from config or environment.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the generative-language API.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a client with default configuration and the given key.
func NewClient(apiKey string) *Client {
	cfg := DefaultConfig()
	cfg.APIKey = apiKey
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// HasKey returns true if an API key is configured.
func (c *Client) HasKey() bool {
	return c.config.APIKey != ""
}

// =============================================================================
// GENERATE
// =============================================================================

// GenerateContent sends a generateContent request and returns the
// decoded response.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if c.config.APIKey == "" {
		return nil, ErrMissingKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	url := c.config.BaseURL + "/v1beta/models/" + c.config.Model + ":generateContent"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode != http.StatusOK {
		// Try to read the service's error envelope
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: apiErr.Error.Message,
			}
		}
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "generate request failed: " + resp.Status,
		}
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if len(result.Candidates) == 0 && result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return nil, &ClientError{
			Type:    ErrTypeBlocked,
			Message: "prompt was blocked: " + result.PromptFeedback.BlockReason,
		}
	}

	return &result, nil
}
