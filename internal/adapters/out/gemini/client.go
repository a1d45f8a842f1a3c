// Package gemini implements ports.TextGenerator over the Google generative-language
// REST API (models/{model}:generateContent).
//
// The client never returns an error to its caller. Transport errors, non-2xx answers
// and unreadable bodies are logged and reported as a ports.Failure generation; a
// well-formed answer without text is ports.Empty.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cargofresh/internal/core/ports"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash-preview-09-2025"

	maxErrorBody = 512
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// Config holds the connection settings. Timeout 0 means no client-side timeout.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Client calls generateContent with a single text part.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *slog.Logger
}

// NewClient builds a client with an OpenTelemetry-instrumented transport.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("gemini timeout must not be negative, got %s", cfg.Timeout)
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse gemini base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("gemini base url %q must be absolute", cfg.BaseURL)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: base.String() + "/v1beta/models/" + url.PathEscape(cfg.Model) + ":generateContent",
		apiKey:   cfg.APIKey,
		logger:   logger.With("component", "gemini-client", "model", cfg.Model),
	}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate submits prompt and classifies the answer.
func (c *Client) Generate(ctx context.Context, prompt string) ports.Generation {
	started := time.Now()

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.ErrorContext(ctx, "generation failed",
			"error", err,
			"elapsed", time.Since(started))
		return ports.Generation{Outcome: ports.Failure, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		c.logger.WarnContext(ctx, "generation returned no text", "elapsed", time.Since(started))
		return ports.Generation{Outcome: ports.Empty}
	}

	c.logger.DebugContext(ctx, "generation succeeded",
		"chars", len(text),
		"elapsed", time.Since(started))
	return ports.Generation{Outcome: ports.Success, Text: text}
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+url.QueryEscape(c.apiKey),
		bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generateContent: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// redact keeps the API key out of logged transport errors, which quote the URL.
func redact(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), url.QueryEscape(apiKey), "REDACTED"))
}
