// Package notify holds the process-wide notification slot and busy flag.
//
// A single ephemeral message is visible at a time. Showing a new message
// supersedes the previous one and restarts the auto-dismiss clock, so a
// stale dismissal can never clear a newer message.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/observability"
)

// Kind classifies a notification for display.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one ephemeral user-facing message.
type Notification struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
}

// Center owns the single notification slot and the shared busy flag.
type Center struct {
	clock   clockwork.Clock
	ttl     time.Duration
	logger  *slog.Logger
	metrics *observability.Metrics

	mu      sync.Mutex
	current *Notification
	busy    bool
}

// NewCenter creates a Center whose messages auto-dismiss after ttl.
func NewCenter(clock clockwork.Clock, ttl time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Center {
	return &Center{
		clock:   clock,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// Show replaces the current notification and schedules its auto-dismissal.
// A later Show supersedes the pending dismissal of an earlier message.
func (c *Center) Show(kind Kind, message string) {
	n := &Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		ShownAt: c.clock.Now(),
	}

	c.mu.Lock()
	c.current = n
	c.mu.Unlock()

	c.metrics.NotificationsShown.WithLabelValues(string(kind)).Inc()
	c.logger.Debug("notification shown", "kind", kind, "message", message)

	id := n.ID
	c.clock.AfterFunc(c.ttl, func() {
		c.dismissIf(id)
	})
}

// Current returns the visible notification, or false when the slot is empty.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Dismiss clears the slot regardless of which message occupies it.
func (c *Center) Dismiss() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// dismissIf clears the slot only when the given message still occupies it.
func (c *Center) dismissIf(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
}

// SetBusy flips the shared busy flag. Concurrent operations share the flag;
// whichever finishes last determines its final state.
func (c *Center) SetBusy(busy bool) {
	c.mu.Lock()
	c.busy = busy
	c.mu.Unlock()

	if busy {
		c.metrics.BusyState.Set(1)
	} else {
		c.metrics.BusyState.Set(0)
	}
}

// Busy reports whether a long-running operation is in flight.
func (c *Center) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}
