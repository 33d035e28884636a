// Package extraction sends datasheet text to a hosted LLM and parses the
// structured completion.
//
// OpenRouter provides a unified API for multiple LLM providers (OpenAI,
// Anthropic, Google, etc.) using a single API key. The request format
// follows the OpenAI chat completions standard.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// maxOutputTokens bounds the completion length. The full schema filled out
// for a multi-variant datasheet fits comfortably under this.
const maxOutputTokens = 4096

// Service calls the hosted model to extract structured specs from text.
type Service struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new extraction service.
//
// All remote-call parameters come in at construction (no package-level
// globals): API key, model identifier, endpoint base URL, and timeout.
func New(apiKey, model, baseURL string, timeout time.Duration) *Service {
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsConfigured reports whether an API key is available.
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// Model returns the configured model identifier.
func (s *Service) Model() string {
	return s.model
}

// --- OpenRouter API types ---
// These match the OpenAI chat completions format used by OpenRouter.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Extract sends the datasheet text to the model and returns the parsed JSON
// object. Deterministic sampling (temperature 0), single user message, one
// request per call — no retry, no backoff.
//
// Failure modes:
//   - *RemoteError for transport/auth/provider failures
//   - *ParseError when the completion is not valid JSON after fence stripping
//   - a plain wrapped error for anything else
func (s *Service) Extract(ctx context.Context, datasheetText string) (map[string]any, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key not configured; set OPENROUTER_API_KEY")
	}

	prompt := BuildPrompt(datasheetText)

	log.Printf("🤖 Extracting datasheet specs using %s (%d chars of text)", s.model, len(datasheetText))

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: 0,
		MaxTokens:   maxOutputTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "Solar Datasheet API")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	if chatResp.Error != nil {
		return nil, &RemoteError{StatusCode: chatResp.Error.Code, Message: chatResp.Error.Message}
	}

	if len(chatResp.Choices) == 0 {
		return nil, &RemoteError{Message: "no choices in model response"}
	}

	content := stripFences(chatResp.Choices[0].Message.Content)

	var result map[string]any
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, &ParseError{RawText: chatResp.Choices[0].Message.Content, Err: err}
	}

	// Advisory only: a nonconforming completion is normalized downstream,
	// never rejected here.
	warnSchemaViolations(result)

	return result, nil
}
