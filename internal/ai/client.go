// Remote completion client.
//
// This file implements the single-attempt Groq (OpenAI-compatible) chat
// completion call used by the processing pipeline. The client absorbs every
// failure mode — network errors, non-2xx statuses, malformed bodies, missing
// fields — into a Degraded Result carrying a fixed placeholder, so the
// pipeline can never fail purely because the remote dependency did.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the fixed model identifier used for every completion.
	DefaultModel = "llama-3.1-8b-instant"

	// PlaceholderUnavailable replaces the output when the completion call
	// fails in any way (transport error, bad status, malformed response).
	PlaceholderUnavailable = "AI service unavailable. Please try again later."
	// PlaceholderEmpty replaces the output when the endpoint answers with an
	// empty or null body.
	PlaceholderEmpty = "AI service returned an empty response."

	defaultTimeout = 60 * time.Second
)

// Config carries the process-wide completion settings. It is constructed once
// at startup and passed by value into NewClient; the client holds no other
// mutable state.
type Config struct {
	BaseURL string // endpoint root, e.g. https://api.groq.com/openai/v1
	APIKey  string // bearer credential
	Model   string // fixed model identifier
}

// Result is the outcome of a completion call. Degraded marks outputs that
// were substituted because the remote call failed; callers that only need
// the text collapse the variant at the outer boundary, while tests can
// assert on which variant occurred without matching placeholder strings.
type Result struct {
	Text     string `json:"text"`
	Degraded bool   `json:"degraded"`
}

// Client invokes the remote chat-completion endpoint. It is safe for
// concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient constructs a Client, applying the Groq defaults for any empty
// Config field. The underlying transport carries a fixed overall timeout;
// there is no retry, backoff, or circuit breaking — one attempt per call.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// chatRequest is the OpenAI-style request body: a fixed model identifier and
// a single-turn "user" message containing the prompt.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse mirrors the subset of the completion response the pipeline
// reads: the first choice's message content.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt to the configured endpoint and returns the first
// choice's message content verbatim. It never returns an error: every
// failure is logged and collapsed into a Degraded Result so the caller's
// control flow stays linear.
func (c *Client) Complete(ctx context.Context, prompt string) Result {
	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return degraded("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return degraded("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return degraded("completion call failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return degraded("read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().
			Int("status", resp.StatusCode).
			Msg("completion endpoint returned non-2xx")
		return Result{Text: PlaceholderUnavailable, Degraded: true}
	}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Result{Text: PlaceholderEmpty, Degraded: true}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return degraded("decode response", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		log.Warn().Msg("completion response missing choices/message/content")
		return Result{Text: PlaceholderUnavailable, Degraded: true}
	}

	return Result{Text: parsed.Choices[0].Message.Content}
}

// degraded logs the failure and returns the unavailable placeholder.
func degraded(msg string, err error) Result {
	log.Warn().Err(err).Msg(msg)
	return Result{Text: PlaceholderUnavailable, Degraded: true}
}
