package maprender

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/refdata"
)

type stubProvider struct {
	pos   domain.Geo
	err   error
	block chan struct{}
}

func (p *stubProvider) RequestPosition(ctx context.Context) (domain.Geo, error) {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return domain.Geo{}, ctx.Err()
		}
	}
	return p.pos, p.err
}

func newLockFixture(t *testing.T, provider domain.PositionProvider) (*LocationLock, *fakeSurface, *notify.Center) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	surface := newFakeSurface()
	center := notify.NewCenter(clockwork.NewFakeClock(), 7*time.Second, logger, metrics)
	return NewLocationLock(surface, provider, center, logger, metrics), surface, center
}

func TestLocationLock_SuccessLocksOntoPosition(t *testing.T) {
	pos := domain.Geo{Lat: 18.55, Lng: -72.33}
	lock, surface, center := newLockFixture(t, &stubProvider{pos: pos})

	state, err := lock.Toggle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LockLocked, state)
	assert.Equal(t, LockLocked, lock.State())
	assert.Contains(t, surface.handleSet(), LocationMarkerHandle)

	fl, ok := surface.lastFlight()
	require.True(t, ok)
	assert.Equal(t, pos, fl.At)
	assert.Equal(t, ZoomLocationLock, fl.Zoom)
	assert.False(t, center.Busy())
}

func TestLocationLock_FailureStaysUnlocked(t *testing.T) {
	lock, surface, center := newLockFixture(t, &stubProvider{err: errors.New("position unavailable")})

	state, err := lock.Toggle(context.Background())

	require.Error(t, err)
	assert.Equal(t, LockUnlocked, state)
	assert.Equal(t, LockUnlocked, lock.State())
	assert.NotContains(t, surface.handleSet(), LocationMarkerHandle)
	assert.False(t, center.Busy())

	n, ok := center.Current()
	require.True(t, ok, "a single error notification is emitted")
	assert.Equal(t, notify.KindError, n.Kind)

	_, ok = surface.lastFlight()
	assert.False(t, ok, "the camera does not move on failure")
}

func TestLocationLock_ToggleReleasesAndFliesHome(t *testing.T) {
	lock, surface, _ := newLockFixture(t, &stubProvider{pos: domain.Geo{Lat: 18.55, Lng: -72.33}})

	_, err := lock.Toggle(context.Background())
	require.NoError(t, err)

	state, err := lock.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LockUnlocked, state)
	assert.NotContains(t, surface.handleSet(), LocationMarkerHandle)

	fl, ok := surface.lastFlight()
	require.True(t, ok)
	assert.Equal(t, refdata.HomeCenter, fl.At)
	assert.Equal(t, refdata.HomeZoom, fl.Zoom)
}

func TestLocationLock_PendingRejectsSecondToggle(t *testing.T) {
	provider := &stubProvider{pos: domain.Geo{Lat: 18.55, Lng: -72.33}, block: make(chan struct{})}
	lock, _, _ := newLockFixture(t, provider)

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(started)
		_, _ = lock.Toggle(context.Background())
	}()
	<-started

	require.Eventually(t, func() bool {
		return lock.State() == LockPending
	}, time.Second, time.Millisecond)

	_, err := lock.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrLockPending)

	close(provider.block)
	<-done
	assert.Equal(t, LockLocked, lock.State())
}
