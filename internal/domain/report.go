package domain

import "time"

// DisasterType classifies a report or hazard zone.
type DisasterType string

const (
	DisasterFlood      DisasterType = "Flood"
	DisasterEarthquake DisasterType = "Earthquake"
	DisasterFire       DisasterType = "Fire"
	DisasterHurricane  DisasterType = "Hurricane"
	DisasterStorm      DisasterType = "Storm"
	DisasterLandslide  DisasterType = "Landslide"
	DisasterOther      DisasterType = "Other"
)

// DisasterTypes lists every valid disaster type in display order.
var DisasterTypes = []DisasterType{
	DisasterFlood,
	DisasterEarthquake,
	DisasterFire,
	DisasterHurricane,
	DisasterStorm,
	DisasterLandslide,
	DisasterOther,
}

// Valid reports whether t is a known disaster type.
func (t DisasterType) Valid() bool {
	for _, known := range DisasterTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ReportStatus is the triage state of a report.
type ReportStatus string

const (
	StatusNew         ReportStatus = "New"
	StatusUnderReview ReportStatus = "Under Review"
	StatusVerified    ReportStatus = "Verified"
	StatusDuplicate   ReportStatus = "Duplicate"
)

// Valid reports whether s is a known report status.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusNew, StatusUnderReview, StatusVerified, StatusDuplicate:
		return true
	}
	return false
}

// Geo is a WGS-84 coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is a citizen-submitted incident report.
type Report struct {
	ID           string       `json:"id"`
	Type         DisasterType `json:"type"`
	Description  string       `json:"description"`
	Location     *Geo         `json:"location,omitempty"`
	LocationText string       `json:"location_text,omitempty"`
	PhotoURL     string       `json:"photo_url,omitempty"`
	Contact      string       `json:"contact,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
	Status       ReportStatus `json:"status"`
	Submitter    string       `json:"submitter,omitempty"`
}

// ReportInput is a submission before the store materializes it: no id,
// timestamp, or status yet. Submitter is optional and defaults to "User".
type ReportInput struct {
	Type         DisasterType `json:"type"`
	Description  string       `json:"description"`
	Location     *Geo         `json:"location,omitempty"`
	LocationText string       `json:"location_text,omitempty"`
	PhotoURL     string       `json:"photo_url,omitempty"`
	Contact      string       `json:"contact,omitempty"`
	Submitter    string       `json:"submitter,omitempty"`
}
