// Package position implements domain.PositionProvider against an external
// positioning service.
package position

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/haitialert/alertnet/internal/domain"
)

// Provider fetches the device position from a positioning endpoint. One
// request per call; the caller decides when to ask.
type Provider struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProvider creates a position client for the given endpoint.
func NewProvider(endpoint string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// RequestPosition asks the positioning service for the current coordinate.
func (p *Provider) RequestPosition(ctx context.Context) (domain.Geo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return domain.Geo{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.Geo{}, fmt.Errorf("position request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Geo{}, fmt.Errorf("positioning service error: status %d: %s", resp.StatusCode, body)
	}

	var pos response
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return domain.Geo{}, fmt.Errorf("decode response: %w", err)
	}

	p.logger.Debug("position resolved", "lat", pos.Latitude, "lng", pos.Longitude)
	return domain.Geo{Lat: pos.Latitude, Lng: pos.Longitude}, nil
}

type response struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Static always returns a fixed coordinate. Used when no positioning
// endpoint is configured.
type Static struct {
	At domain.Geo
}

func (s Static) RequestPosition(context.Context) (domain.Geo, error) {
	return s.At, nil
}
