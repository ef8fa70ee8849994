// Package sim provides stand-in collaborators for channels the system does
// not yet have: voice announcements and SMS delivery. Both only log; real
// implementations satisfy the same domain interfaces.
package sim

import (
	"context"
	"log/slog"

	"github.com/haitialert/alertnet/internal/domain"
)

// Announcer logs the spoken confirmation instead of synthesizing speech.
type Announcer struct {
	logger *slog.Logger
}

func NewAnnouncer(logger *slog.Logger) *Announcer {
	return &Announcer{logger: logger}
}

func (a *Announcer) Announce(_ context.Context, message string) error {
	a.logger.Info("simulated voice announcement", "message", message)
	return nil
}

// Dispatcher logs the alert body instead of sending an SMS.
type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Dispatch(_ context.Context, msg domain.AlertMessage) error {
	d.logger.Info("simulated SMS dispatch",
		"recipient", msg.Recipient,
		"report_id", msg.ReportID,
		"body", msg.Body(),
	)
	return nil
}
