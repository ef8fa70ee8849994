// Package ai implements domain.Analyzer against a Gemini-style
// generateContent endpoint. Without an API key it degrades to a canned,
// clearly labeled placeholder instead of failing.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/observability"
)

// ErrUnavailable is the only error surfaced to callers; the underlying
// failure is logged, not exposed.
var ErrUnavailable = errors.New("failed to get analysis from AI")

// fallbackDelay simulates the analysis latency when no key is configured.
const fallbackDelay = time.Second

var fencePattern = regexp.MustCompile("(?s)^```(?:\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// Client calls the text-analysis model on report drafts.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an analysis client. An empty apiKey switches the client
// into fallback mode.
func NewClient(apiKey, endpoint string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Analyze summarizes a report draft and suggests a type and a safety tip.
func (c *Client) Analyze(ctx context.Context, description string, image []byte) (domain.Suggestion, error) {
	if c.apiKey == "" {
		c.logger.Warn("analysis API key not configured, returning placeholder")
		c.metrics.AIRequests.WithLabelValues("fallback").Inc()
		select {
		case <-c.clock.After(fallbackDelay):
		case <-ctx.Done():
			return domain.Suggestion{}, ctx.Err()
		}
		return domain.Suggestion{
			Summary:       "AI analysis is currently unavailable. Ensure API key is configured.",
			SuggestedType: "N/A",
			SafetyTip:     "Stay informed through official channels and prioritize your safety.",
		}, nil
	}

	suggestion, err := c.analyze(ctx, description, image)
	if err != nil {
		c.metrics.AIRequests.WithLabelValues("error").Inc()
		c.logger.Error("analysis request failed", "error", err)
		return domain.Suggestion{}, ErrUnavailable
	}
	c.metrics.AIRequests.WithLabelValues("success").Inc()
	return suggestion, nil
}

func (c *Client) analyze(ctx context.Context, description string, image []byte) (domain.Suggestion, error) {
	prompt := fmt.Sprintf(`Analyze the following disaster report description. Provide:
1. A concise summary of the situation (max 30 words).
2. A suggested disaster type (e.g., Flood, Fire, Earthquake, Landslide, Other).
3. One brief, actionable safety tip relevant to the described situation (max 20 words).

Format the response as a JSON object with keys "summary", "suggestedType", and "safetyTip".
Description: %q`, description)

	parts := []part{{Text: prompt}}
	if len(image) > 0 {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(image),
			},
		})
	}

	body, err := json.Marshal(request{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return domain.Suggestion{}, fmt.Errorf("analysis API error: status %d: %s", resp.StatusCode, respBody)
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return domain.Suggestion{}, fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return domain.Suggestion{}, errors.New("empty response")
	}

	text := stripFences(apiResp.Candidates[0].Content.Parts[0].Text)
	var raw struct {
		Summary       string `json:"summary"`
		SuggestedType string `json:"suggestedType"`
		SafetyTip     string `json:"safetyTip"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return domain.Suggestion{}, fmt.Errorf("parse suggestion: %w", err)
	}

	return domain.Suggestion{
		Summary:       raw.Summary,
		SuggestedType: raw.SuggestedType,
		SafetyTip:     raw.SafetyTip,
	}, nil
}

// stripFences unwraps a markdown code fence the model sometimes adds around
// its JSON payload.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// Gemini API request and response types.

type request struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
