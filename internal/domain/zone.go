package domain

import (
	"strings"
	"time"
)

// Severity is a hazard zone's danger tier.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Area is a zone's footprint: either a polygon ring of at least three
// coordinates, or a circle with a center and radius in meters. Exactly one
// form is populated.
type Area struct {
	Ring   []Geo   `json:"ring,omitempty"`
	Center *Geo    `json:"center,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// IsCircle reports whether the area is the circle form.
func (a Area) IsCircle() bool {
	return a.Center != nil
}

// HazardZone marks an affected or at-risk area on the map. Seeded zones are
// mutated only by administrative severity escalation; derived zones follow
// their report's status (see package doc).
type HazardZone struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        DisasterType `json:"type"`
	Area        Area         `json:"area"`
	Severity    Severity     `json:"severity"`
	LastUpdated time.Time    `json:"last_updated"`
	Description string       `json:"description,omitempty"`
}

// DerivedZonePrefix starts the id of every zone created from a report.
const DerivedZonePrefix = "zone-from-"

// DerivedZoneID returns the id of the zone derived from the given report.
func DerivedZoneID(reportID string) string {
	return DerivedZonePrefix + reportID
}

// IsDerivedZoneID reports whether id names a report-derived zone.
func IsDerivedZoneID(id string) bool {
	return strings.HasPrefix(id, DerivedZonePrefix)
}

// DerivedZoneName builds the display name of a report-derived zone.
func DerivedZoneName(t DisasterType) string {
	return "User Reported " + string(t) + " Zone"
}

// VerifiedZoneName annotates a derived zone's name after its report is
// verified. The name is rebuilt from the report's original type so repeated
// verifications are idempotent.
func VerifiedZoneName(t DisasterType) string {
	return DerivedZoneName(t) + " (Verified)"
}
