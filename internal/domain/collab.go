package domain

import (
	"context"
	"fmt"
)

// Announcer speaks a user-facing confirmation aloud. Calls are best-effort;
// errors are logged by the caller and never surfaced.
type Announcer interface {
	Announce(ctx context.Context, message string) error
}

// AlertMessage is the structured alert dispatched after a report commits.
type AlertMessage struct {
	Recipient   string       `json:"recipient"`
	ReportID    string       `json:"report_id"`
	ShortID     string       `json:"short_id"`
	Type        DisasterType `json:"type"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
}

// Body renders the SMS-style text of the alert. Both the simulated and the
// broker-backed dispatchers send this exact text so operators see the same
// message regardless of the channel.
func (m AlertMessage) Body() string {
	return fmt.Sprintf(
		"New AlertNet Report:\nType: %s\nLocation: %s\nDesc: %s\nID: %s",
		m.Type, m.Location, m.Description, m.ShortID,
	)
}

// Dispatcher delivers an alert message over a side channel. The engine's
// default dispatcher only simulates delivery; implementations backed by a
// real channel satisfy the same contract.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg AlertMessage) error
}

// Suggestion is the structured result of an AI analysis of a report draft.
type Suggestion struct {
	Summary       string `json:"summary,omitempty"`
	SuggestedType string `json:"suggested_type,omitempty"`
	SafetyTip     string `json:"safety_tip,omitempty"`
}

// Analyzer produces a Suggestion from a free-text description and an
// optional photo.
type Analyzer interface {
	Analyze(ctx context.Context, description string, image []byte) (Suggestion, error)
}

// PositionProvider resolves the device's current position. It is invoked
// once per location-lock attempt, never automatically.
type PositionProvider interface {
	RequestPosition(ctx context.Context) (Geo, error)
}
