// Package store holds the authoritative in-memory collections of reports,
// resources, and hazard zones.
//
// Collections are most-recent-first. The store is the only place reports and
// derived zones are mutated; every other component reads snapshots and reacts
// to change events from Watch. Unknown ids are silently ignored because the
// surrounding system never references an id it did not itself create.
package store

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/refdata"
)

// ReportIDPrefix starts every store-assigned report id.
const ReportIDPrefix = "report-"

// Snapshot is a point-in-time copy of all three collections.
type Snapshot struct {
	Reports   []domain.Report     `json:"reports"`
	Resources []domain.Resource   `json:"resources"`
	Zones     []domain.HazardZone `json:"zones"`
}

// Store owns the report, resource, and zone collections and the typed
// report-to-derived-zone relation.
type Store struct {
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics

	broadcaster *Broadcaster

	mu        sync.RWMutex
	reports   []domain.Report
	resources []domain.Resource
	zones     []domain.HazardZone
	derived   map[string]string // report id -> derived zone id
}

// New creates an empty Store.
func New(clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		clock:       clock,
		logger:      logger,
		metrics:     metrics,
		broadcaster: NewBroadcaster(),
		derived:     make(map[string]string),
	}
}

// LoadSeed replaces the collections with seeded data. Derived-zone relations
// are rebuilt from zone ids so seeded report-derived zones stay linked.
func (s *Store) LoadSeed(reports []domain.Report, resources []domain.Resource, zones []domain.HazardZone) {
	s.mu.Lock()
	s.reports = append([]domain.Report(nil), reports...)
	s.resources = append([]domain.Resource(nil), resources...)
	s.zones = append([]domain.HazardZone(nil), zones...)
	s.derived = make(map[string]string)
	for _, z := range zones {
		if domain.IsDerivedZoneID(z.ID) {
			s.derived[z.ID[len(domain.DerivedZonePrefix):]] = z.ID
		}
	}
	s.mu.Unlock()

	s.broadcaster.Broadcast(Event{Class: ClassReports})
	s.broadcaster.Broadcast(Event{Class: ClassResources})
	s.broadcaster.Broadcast(Event{Class: ClassZones})
}

// AddReport materializes a submission: assigns id, timestamp, status New, and
// a submitter label; falls back to the type's stock photo; resolves a missing
// coordinate from the location label; and, when a coordinate is known,
// derives a Medium-severity circular zone linked to the report.
func (s *Store) AddReport(input domain.ReportInput) domain.Report {
	now := s.clock.Now()

	r := domain.Report{
		ID:           ReportIDPrefix + uuid.NewString(),
		Type:         input.Type,
		Description:  input.Description,
		Location:     input.Location,
		LocationText: input.LocationText,
		PhotoURL:     input.PhotoURL,
		Contact:      input.Contact,
		Timestamp:    now,
		Status:       domain.StatusNew,
		Submitter:    input.Submitter,
	}
	if r.Submitter == "" {
		r.Submitter = "User"
	}
	if r.PhotoURL == "" {
		r.PhotoURL = refdata.DefaultPhotoURL(r.Type)
	}
	if r.Location == nil && r.LocationText != "" {
		if loc, ok := refdata.LookupRegion(r.LocationText); ok {
			r.Location = &loc
			s.metrics.RegionResolutions.Inc()
		}
	}

	var zone *domain.HazardZone
	if r.Location != nil {
		center := *r.Location
		zone = &domain.HazardZone{
			ID:          domain.DerivedZoneID(r.ID),
			Name:        domain.DerivedZoneName(r.Type),
			Type:        r.Type,
			Area:        domain.Area{Center: &center, Radius: refdata.DefaultZoneRadius},
			Severity:    domain.SeverityMedium,
			LastUpdated: now,
			Description: "This zone was automatically generated from a user report regarding a " + string(r.Type) + " event.",
		}
	}

	s.mu.Lock()
	s.reports = append([]domain.Report{r}, s.reports...)
	if zone != nil {
		s.zones = append([]domain.HazardZone{*zone}, s.zones...)
		s.derived[r.ID] = zone.ID
	}
	s.mu.Unlock()

	if zone != nil {
		s.metrics.ZonesDerived.Inc()
		s.logger.Info("derived zone created", "zone_id", zone.ID, "report_id", r.ID, "type", r.Type)
	}
	s.logger.Info("report added", "report_id", r.ID, "type", r.Type, "status", r.Status)

	s.broadcaster.Broadcast(Event{Class: ClassReports})
	if zone != nil {
		s.broadcaster.Broadcast(Event{Class: ClassZones})
	}
	return r
}

// UpdateReportStatus sets a report's triage status and applies the derived
// zone's lifecycle rule: Duplicate removes the zone, Verified escalates it to
// High and annotates its name using the report's original type. Unknown ids
// are a no-op. The operation is idempotent per status value.
func (s *Store) UpdateReportStatus(id string, status domain.ReportStatus) bool {
	s.mu.Lock()

	idx := -1
	for i := range s.reports {
		if s.reports[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	originalType := s.reports[idx].Type
	s.reports[idx].Status = status

	zoneChanged := false
	zoneRemoved := false
	if zoneID, ok := s.derived[id]; ok {
		switch status {
		case domain.StatusDuplicate:
			for i := range s.zones {
				if s.zones[i].ID == zoneID {
					s.zones = append(s.zones[:i], s.zones[i+1:]...)
					break
				}
			}
			delete(s.derived, id)
			zoneChanged = true
			zoneRemoved = true
		case domain.StatusVerified:
			for i := range s.zones {
				if s.zones[i].ID == zoneID {
					s.zones[i].Severity = domain.SeverityHigh
					s.zones[i].Name = domain.VerifiedZoneName(originalType)
					s.zones[i].LastUpdated = s.clock.Now()
					zoneChanged = true
					break
				}
			}
		}
	}
	s.mu.Unlock()

	if zoneRemoved {
		s.metrics.ZonesRemoved.Inc()
	}
	s.logger.Info("report status updated", "report_id", id, "status", status)

	s.broadcaster.Broadcast(Event{Class: ClassReports})
	if zoneChanged {
		s.broadcaster.Broadcast(Event{Class: ClassZones})
	}
	return true
}

// EscalateZone sets a seeded zone's severity, refreshing its timestamp.
// Unknown ids are a no-op.
func (s *Store) EscalateZone(zoneID string, severity domain.Severity) bool {
	s.mu.Lock()
	found := false
	for i := range s.zones {
		if s.zones[i].ID == zoneID {
			s.zones[i].Severity = severity
			s.zones[i].LastUpdated = s.clock.Now()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.logger.Info("zone escalated", "zone_id", zoneID, "severity", severity)
		s.broadcaster.Broadcast(Event{Class: ClassZones})
	}
	return found
}

// Snapshot returns a copy of all three collections. Callers may hold the
// result indefinitely; the store never mutates through its shared pointers.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Reports:   append([]domain.Report(nil), s.reports...),
		Resources: append([]domain.Resource(nil), s.resources...),
		Zones:     append([]domain.HazardZone(nil), s.zones...),
	}
}

// Report returns the report with the given id.
func (s *Store) Report(id string) (domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			return s.reports[i], true
		}
	}
	return domain.Report{}, false
}

// Resource returns the resource with the given id.
func (s *Store) Resource(id string) (domain.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.resources {
		if s.resources[i].ID == id {
			return s.resources[i], true
		}
	}
	return domain.Resource{}, false
}

// Zone returns the zone with the given id.
func (s *Store) Zone(id string) (domain.HazardZone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.zones {
		if s.zones[i].ID == id {
			return s.zones[i], true
		}
	}
	return domain.HazardZone{}, false
}

// DerivedZoneFor returns the id of the zone derived from the given report.
func (s *Store) DerivedZoneFor(reportID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	zoneID, ok := s.derived[reportID]
	return zoneID, ok
}

// Watch subscribes to change events. See Broadcaster.
func (s *Store) Watch() (uint64, <-chan Event) {
	return s.broadcaster.Subscribe()
}

// Unwatch cancels a subscription and closes its channel.
func (s *Store) Unwatch(id uint64) {
	s.broadcaster.Unsubscribe(id)
}

// Close closes all subscriber channels.
func (s *Store) Close() {
	s.broadcaster.Close()
}
