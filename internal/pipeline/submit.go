// Package pipeline runs the asynchronous report submission flow: notify and
// mark busy, wait out the simulated processing delay, commit the report to
// the store, then fire the best-effort announcement and alert dispatch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/store"
)

var (
	ErrInvalidType      = errors.New("unknown disaster type")
	ErrEmptyDescription = errors.New("description is required")
	ErrMissingLocation  = errors.New("a coordinate or location label is required")
)

// Submitter orchestrates report submissions. Concurrent submissions are
// independent; they share the notification center's busy flag, so the one
// that finishes last determines its final state.
type Submitter struct {
	store      *store.Store
	center     *notify.Center
	announcer  domain.Announcer
	dispatcher domain.Dispatcher
	clock      clockwork.Clock
	delay      time.Duration
	recipient  string
	logger     *slog.Logger
	metrics    *observability.Metrics

	wg sync.WaitGroup
}

// NewSubmitter creates a Submitter with the given simulated processing delay
// and alert recipient.
func NewSubmitter(
	st *store.Store,
	center *notify.Center,
	announcer domain.Announcer,
	dispatcher domain.Dispatcher,
	clock clockwork.Clock,
	delay time.Duration,
	recipient string,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Submitter {
	return &Submitter{
		store:      st,
		center:     center,
		announcer:  announcer,
		dispatcher: dispatcher,
		clock:      clock,
		delay:      delay,
		recipient:  recipient,
		logger:     logger,
		metrics:    metrics,
	}
}

// Submit validates the input and, if it is well formed, starts the
// asynchronous submission. Validation failures are returned synchronously and
// the pipeline never starts. A started submission cannot be cancelled; it
// detaches from the caller's context.
func (s *Submitter) Submit(ctx context.Context, input domain.ReportInput) error {
	if err := validate(input); err != nil {
		s.metrics.ValidationErrors.Inc()
		return err
	}

	s.center.Show(notify.KindInfo, "Submitting your report...")
	s.center.SetBusy(true)

	detached := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go s.run(detached, input)
	return nil
}

// Wait blocks until every in-flight submission and its side effects finish.
// Used for graceful shutdown and by tests.
func (s *Submitter) Wait() {
	s.wg.Wait()
}

func validate(input domain.ReportInput) error {
	if !input.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrEmptyDescription
	}
	if input.Location == nil && strings.TrimSpace(input.LocationText) == "" {
		return ErrMissingLocation
	}
	return nil
}

func (s *Submitter) run(ctx context.Context, input domain.ReportInput) {
	defer s.wg.Done()
	started := s.clock.Now()

	// Simulated network and validation latency. The store mutation is not
	// observable until this elapses.
	<-s.clock.After(s.delay)

	r := s.store.AddReport(input)

	s.center.SetBusy(false)
	s.center.Show(notify.KindSuccess, "Report submitted successfully and is now on the map.")
	s.metrics.ReportsSubmitted.Inc()
	s.metrics.SubmissionDuration.Observe(s.clock.Since(started).Seconds())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.announcer.Announce(ctx, "Your report has been submitted."); err != nil {
			s.logger.Error("announcement failed", "report_id", r.ID, "error", err)
		}
	}()

	s.dispatch(ctx, r)
}

// dispatch formats and sends the alert for a committed report. Failures are
// logged only; a notification describing the attempt is shown regardless.
func (s *Submitter) dispatch(ctx context.Context, r domain.Report) {
	msg := domain.AlertMessage{
		Recipient:   s.recipient,
		ReportID:    r.ID,
		ShortID:     ShortID(r.ID),
		Type:        r.Type,
		Location:    locationLabel(r),
		Description: truncate(r.Description, 100),
	}

	if err := s.dispatcher.Dispatch(ctx, msg); err != nil {
		s.metrics.DispatchAttempts.WithLabelValues("error").Inc()
		s.logger.Error("alert dispatch failed", "report_id", r.ID, "recipient", s.recipient, "error", err)
	} else {
		s.metrics.DispatchAttempts.WithLabelValues("success").Inc()
	}

	s.center.Show(notify.KindInfo,
		fmt.Sprintf("Alert dispatched to %s (Ref: %s).", s.recipient, msg.ShortID))
}

// ShortID is the operator-facing reference for a report: the first six
// characters after the id prefix.
func ShortID(reportID string) string {
	id := strings.TrimPrefix(reportID, store.ReportIDPrefix)
	if len(id) > 6 {
		id = id[:6]
	}
	return id
}

func locationLabel(r domain.Report) string {
	if r.LocationText != "" {
		return r.LocationText
	}
	if r.Location != nil {
		return fmt.Sprintf("Lat: %.4f, Lng: %.4f", r.Location.Lat, r.Location.Lng)
	}
	return "Unknown Location"
}

// truncate cuts on rune boundaries so accented text survives the ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
