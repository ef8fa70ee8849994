// Package domain models the entities of the incident synchronization engine:
// citizen-submitted reports, relief resources, and hazard zones.
//
// # Reports
//
// A Report is created once by the submission pipeline and owned by the store
// afterwards. Reports are never deleted; triage happens by moving the status
// through New, Under Review, Verified, or Duplicate. Status values use the
// display spellings of the original alert network ("Under Review" contains a
// space) because they double as user-facing labels and search terms.
//
// # Derived zones
//
// A report with a resolvable coordinate produces exactly one hazard zone at
// submission time. Derived zone ids follow the form
//
//	zone-from-<reportID>
//
// so they remain recognizable in exports and map tooltips, but the
// authoritative link is the store's reportID → zoneID relation, not the id
// spelling. A report's status drives the derived zone's lifecycle:
// Verified escalates the zone to High severity and annotates its name,
// Duplicate deletes the zone, every other transition leaves it untouched.
//
// # Areas
//
// A zone covers either a polygon (ordered ring of at least three
// coordinates) or a circle ({center, radius in meters}). Both forms carry
// the same severity and rendering semantics.
//
// # External collaborators
//
// The Announcer, Dispatcher, Analyzer, and PositionProvider interfaces wrap
// capabilities the engine consumes but does not implement: voice output, the
// alert side channel, the AI suggestion service, and device positioning.
// All of them are best-effort from the engine's point of view; their
// failures degrade to a notification or a log line, never a crash.
package domain
