package domain

import "time"

// ResourceCategory classifies a relief resource. Values are display labels,
// matched verbatim by the category filter.
type ResourceCategory string

const (
	CategoryMedical           ResourceCategory = "Medical Facilities"
	CategoryFood              ResourceCategory = "Food Security"
	CategoryShelter           ResourceCategory = "Shelters"
	CategoryWater             ResourceCategory = "Water Source"
	CategoryEmergencyServices ResourceCategory = "Emergency Services"
)

// ResourceCategories lists every valid category in display order.
var ResourceCategories = []ResourceCategory{
	CategoryMedical,
	CategoryFood,
	CategoryShelter,
	CategoryWater,
	CategoryEmergencyServices,
}

// Valid reports whether c is a known resource category.
func (c ResourceCategory) Valid() bool {
	for _, known := range ResourceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Availability is the coarse capacity state of a resource.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityLimited   Availability = "Limited"
	AvailabilityFull      Availability = "Full"
	AvailabilityUnknown   Availability = "Unknown"
)

// Resource is a relief facility or service shown on the map. Resources are
// seeded in this engine; the type carries capacity and freshness fields so a
// live feed can update them later without a model change.
type Resource struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        ResourceCategory `json:"category"`
	Location        Geo              `json:"location"`
	Address         string           `json:"address"`
	Contact         string           `json:"contact"`
	OperatingHours  string           `json:"operating_hours,omitempty"`
	Icon            string           `json:"icon"`
	Description     string           `json:"description,omitempty"`
	Availability    Availability     `json:"availability"`
	CurrentCapacity int              `json:"current_capacity,omitempty"`
	MaxCapacity     int              `json:"max_capacity,omitempty"`
	Services        []string         `json:"services,omitempty"`
	DistanceKm      float64          `json:"distance_km,omitempty"`
	LastUpdate      time.Time        `json:"last_update,omitempty"`
}
