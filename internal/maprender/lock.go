package maprender

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/refdata"
)

// LockState is the camera-follow mode.
type LockState string

const (
	LockUnlocked LockState = "unlocked"
	LockPending  LockState = "pending"
	LockLocked   LockState = "locked"
)

// LocationMarkerHandle identifies the single "my location" primitive.
const LocationMarkerHandle Handle = "user-location"

var locationMarkerStyle = MarkerStyle{Glyph: "location-dot", Color: colorPrimaryBlue, SizePx: 24}

// ErrLockPending is returned when a toggle arrives while a position request
// is already in flight.
var ErrLockPending = errors.New("position request already in flight")

// LocationLock follows the device position: one position fetch per lock
// attempt, never re-polled. On success the camera locks onto the resolved
// coordinate; unlocking returns the camera to the home view.
type LocationLock struct {
	surface  Surface
	provider domain.PositionProvider
	center   *notify.Center
	logger   *slog.Logger
	metrics  *observability.Metrics

	mu    sync.Mutex
	state LockState
}

// NewLocationLock creates an unlocked LocationLock.
func NewLocationLock(
	surface Surface,
	provider domain.PositionProvider,
	center *notify.Center,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *LocationLock {
	return &LocationLock{
		surface:  surface,
		provider: provider,
		center:   center,
		logger:   logger,
		metrics:  metrics,
		state:    LockUnlocked,
	}
}

// State returns the current lock state.
func (l *LocationLock) State() LockState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Toggle flips the lock: unlocked engages a position fetch, locked releases.
// A toggle during an in-flight fetch returns ErrLockPending.
func (l *LocationLock) Toggle(ctx context.Context) (LockState, error) {
	l.mu.Lock()
	switch l.state {
	case LockPending:
		l.mu.Unlock()
		return LockPending, ErrLockPending
	case LockLocked:
		l.state = LockUnlocked
		l.mu.Unlock()
		l.release()
		return LockUnlocked, nil
	}
	l.state = LockPending
	l.mu.Unlock()

	return l.engage(ctx)
}

// engage fetches the position once and either locks on or falls back to
// unlocked with an error notification.
func (l *LocationLock) engage(ctx context.Context) (LockState, error) {
	l.surface.Remove(LocationMarkerHandle)
	l.center.SetBusy(true)

	pos, err := l.provider.RequestPosition(ctx)

	l.center.SetBusy(false)
	if err != nil {
		l.metrics.PositionRequests.WithLabelValues("error").Inc()
		l.logger.Warn("position request failed", "error", err)
		l.center.Show(notify.KindError, "Could not determine your location: "+err.Error())

		l.mu.Lock()
		l.state = LockUnlocked
		l.mu.Unlock()
		return LockUnlocked, err
	}

	l.metrics.PositionRequests.WithLabelValues("success").Inc()
	l.surface.AddMarker(LocationMarkerHandle, pos, locationMarkerStyle, "Your location")
	l.surface.FlyTo(pos, ZoomLocationLock)
	l.metrics.CameraMoves.Inc()

	l.mu.Lock()
	l.state = LockLocked
	l.mu.Unlock()
	return LockLocked, nil
}

// release removes the location marker and returns the camera home.
func (l *LocationLock) release() {
	l.surface.Remove(LocationMarkerHandle)
	l.surface.FlyTo(refdata.HomeCenter, refdata.HomeZoom)
	l.metrics.CameraMoves.Inc()
}
