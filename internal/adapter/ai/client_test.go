package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func candidateResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestAnalyze_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "River overflow")

		_, _ = w.Write([]byte(candidateResponse(
			`{"summary":"Flooding near market","suggestedType":"Flood","safetyTip":"Move to higher ground."}`)))
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, time.Second, clockwork.NewRealClock(), testLogger(), observability.NewMetricsForTesting())
	got, err := c.Analyze(context.Background(), "River overflow near market", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.Suggestion{
		Summary:       "Flooding near market",
		SuggestedType: "Flood",
		SafetyTip:     "Move to higher ground.",
	}, got)
}

func TestAnalyze_StripsCodeFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateResponse(
			"```json\n{\"summary\":\"Fenced\",\"suggestedType\":\"Fire\",\"safetyTip\":\"Evacuate.\"}\n```")))
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, time.Second, clockwork.NewRealClock(), testLogger(), observability.NewMetricsForTesting())
	got, err := c.Analyze(context.Background(), "smoke", nil)

	require.NoError(t, err)
	assert.Equal(t, "Fenced", got.Summary)
	assert.Equal(t, "Fire", got.SuggestedType)
}

func TestAnalyze_SendsImageInline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents[0].Parts, 2)
		require.NotNil(t, req.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[1].InlineData.MimeType)

		_, _ = w.Write([]byte(candidateResponse(`{"summary":"ok"}`)))
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, time.Second, clockwork.NewRealClock(), testLogger(), observability.NewMetricsForTesting())
	_, err := c.Analyze(context.Background(), "photo attached", []byte{0xFF, 0xD8})
	require.NoError(t, err)
}

func TestAnalyze_FailuresSurfaceGenericError(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}},
		{"empty candidates", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}},
		{"unparseable payload", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(candidateResponse("not json at all")))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c := NewClient("test-key", server.URL, time.Second, clockwork.NewRealClock(), testLogger(), observability.NewMetricsForTesting())
			_, err := c.Analyze(context.Background(), "anything", nil)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestAnalyze_NoKeyReturnsPlaceholder(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewClient("", "http://unused", time.Second, clock, testLogger(), observability.NewMetricsForTesting())

	type result struct {
		suggestion domain.Suggestion
		err        error
	}
	results := make(chan result, 1)
	go func() {
		s, err := c.Analyze(context.Background(), "no key configured", nil)
		results <- result{s, err}
	}()

	clock.BlockUntil(1)
	clock.Advance(fallbackDelay)

	select {
	case got := <-results:
		require.NoError(t, got.err)
		assert.Contains(t, got.suggestion.Summary, "currently unavailable")
		assert.Equal(t, "N/A", got.suggestion.SuggestedType)
		assert.NotEmpty(t, got.suggestion.SafetyTip)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the placeholder")
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`  {"a":1}  `))
}
