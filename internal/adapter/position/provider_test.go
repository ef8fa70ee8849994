package position

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haitialert/alertnet/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestPosition_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 18.5392, "longitude": -72.3364}`))
	}))
	defer server.Close()

	p := NewProvider(server.URL, time.Second, testLogger())
	pos, err := p.RequestPosition(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Geo{Lat: 18.5392, Lng: -72.3364}, pos)
}

func TestRequestPosition_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "position unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewProvider(server.URL, time.Second, testLogger())
	_, err := p.RequestPosition(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestRequestPosition_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	p := NewProvider(server.URL, time.Second, testLogger())
	_, err := p.RequestPosition(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestRequestPosition_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	p := NewProvider(server.URL, time.Second, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RequestPosition(ctx)
	require.Error(t, err)
}

func TestStatic(t *testing.T) {
	at := domain.Geo{Lat: 18.9712, Lng: -72.2852}
	pos, err := Static{At: at}.RequestPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, at, pos)
}
