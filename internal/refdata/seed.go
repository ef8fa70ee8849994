package refdata

import (
	"time"

	"github.com/haitialert/alertnet/internal/domain"
)

// SeedReports returns the initial report collection. Timestamps are relative
// to now so seeded entries look recent without ever triggering the camera
// attention window.
func SeedReports(now time.Time) []domain.Report {
	return []domain.Report{
		{
			ID:           "HTreport1",
			Type:         domain.DisasterFlood,
			Description:  "Flooding in Cité Soleil after heavy rains. Roads are blocked.",
			Location:     &domain.Geo{Lat: 18.5780, Lng: -72.3377},
			LocationText: "Cité Soleil",
			PhotoURL:     DefaultPhotoURL(domain.DisasterFlood),
			Timestamp:    now.Add(-3 * time.Hour),
			Status:       domain.StatusVerified,
			Submitter:    "Jean P.",
		},
		{
			ID:           "HTreport2",
			Type:         domain.DisasterEarthquake,
			Description:  "Minor tremors felt in Jacmel. Some cracks in older buildings.",
			Location:     &domain.Geo{Lat: 18.2345, Lng: -72.5347},
			LocationText: "Sud-Est",
			PhotoURL:     DefaultPhotoURL(domain.DisasterEarthquake),
			Timestamp:    now.Add(-1 * time.Hour),
			Status:       domain.StatusUnderReview,
		},
		{
			ID:           "HTreport3",
			Type:         domain.DisasterStorm,
			Description:  "Strong winds and rain in Cap-Haïtien. Power outages reported.",
			Location:     &domain.Geo{Lat: 19.7528, Lng: -72.1944},
			LocationText: "Cap-Haïtien",
			PhotoURL:     DefaultPhotoURL(domain.DisasterStorm),
			Timestamp:    now.Add(-6 * time.Hour),
			Status:       domain.StatusNew,
		},
	}
}

// SeedResources returns the initial relief resource collection.
func SeedResources(now time.Time) []domain.Resource {
	return []domain.Resource{
		{
			ID:              "HThospital1",
			Name:            "City General Hospital (HUEH)",
			Category:        domain.CategoryMedical,
			Location:        domain.Geo{Lat: 18.5393, Lng: -72.3365},
			Address:         "123 Healthcare Avenue, Central District, Port-au-Prince",
			Contact:         "+509-11-2567-8900",
			OperatingHours:  "24/7",
			Icon:            "hospital",
			Description:     "Multi-specialty hospital with full emergency services and trauma center.",
			Availability:    domain.AvailabilityAvailable,
			CurrentCapacity: 85,
			MaxCapacity:     200,
			Services:        []string{"Emergency", "ICU", "Surgery", "Ambulance", "Pediatrics"},
			DistanceKm:      1.2,
			LastUpdate:      now.Add(-5 * time.Minute),
		},
		{
			ID:              "HTclinic1",
			Name:            "Community Health Clinic",
			Category:        domain.CategoryMedical,
			Location:        domain.Geo{Lat: 18.5517, Lng: -72.3029},
			Address:         "654 Health Street, South District, Delmas",
			Contact:         "+509-11-2567-8904",
			OperatingHours:  "9:00 AM - 5:00 PM",
			Icon:            "clinic",
			Description:     "Primary healthcare facility providing basic medical services, vaccinations, and maternal care.",
			Availability:    domain.AvailabilityFull,
			CurrentCapacity: 50,
			MaxCapacity:     50,
			Services:        []string{"Basic Treatment", "First Aid", "Medication", "Vaccination"},
			DistanceKm:      3.2,
			LastUpdate:      now.Add(-18 * time.Minute),
		},
		{
			ID:              "HTfoodcenter1",
			Name:            "Hope Food Pantry - Delmas",
			Category:        domain.CategoryFood,
			Location:        domain.Geo{Lat: 18.5480, Lng: -72.3005},
			Address:         "789 Charity Road, Delmas 33, Port-au-Prince",
			Contact:         "+509-22-3333-4444",
			OperatingHours:  "10 AM - 2 PM (Mon-Fri)",
			Icon:            "utensils",
			Description:     "Provides essential food rations including rice, beans, and cooking oil to families in need.",
			Availability:    domain.AvailabilityAvailable,
			CurrentCapacity: 150,
			MaxCapacity:     200,
			Services:        []string{"Dry Rations", "Nutrition Advice"},
			DistanceKm:      2.5,
			LastUpdate:      now.Add(-2 * time.Hour),
		},
		{
			ID:              "HTshelter1",
			Name:            "Safe Haven Community Shelter",
			Category:        domain.CategoryShelter,
			Location:        domain.Geo{Lat: 18.5338, Lng: -72.4096},
			Address:         "456 Safe Route, Carrefour, near Mariani",
			Contact:         "+509-44-5555-6666",
			OperatingHours:  "24/7",
			Icon:            "house-chimney-user",
			Description:     "Temporary shelter providing cots, blankets, and basic hygiene kits for displaced individuals.",
			Availability:    domain.AvailabilityLimited,
			CurrentCapacity: 80,
			MaxCapacity:     100,
			Services:        []string{"Beds", "Meals", "First Aid Post"},
			DistanceKm:      5.1,
			LastUpdate:      now.Add(-30 * time.Minute),
		},
		{
			ID:              "HTwater1",
			Name:            "AquaPure Water Station - Léogâne",
			Category:        domain.CategoryWater,
			Location:        domain.Geo{Lat: 18.5104, Lng: -72.6337},
			Address:         "Near central market, Léogâne",
			Contact:         "Local committee: +509-55-7777-8888",
			OperatingHours:  "8 AM - 6 PM",
			Icon:            "water",
			Description:     "Community access point for purified drinking water. Bring your own containers.",
			Availability:    domain.AvailabilityAvailable,
			CurrentCapacity: 5000,
			MaxCapacity:     10000,
			Services:        []string{"Potable Water", "Container Refill"},
			DistanceKm:      10.3,
			LastUpdate:      now.Add(-1 * time.Hour),
		},
		{
			ID:              "HTemergency1",
			Name:            "Rapid Response Paramedics",
			Category:        domain.CategoryEmergencyServices,
			Location:        domain.Geo{Lat: 18.56, Lng: -72.32},
			Address:         "Serves Port-au-Prince Metropolitan Area",
			Contact:         "Emergency Hotline: 118",
			OperatingHours:  "24/7",
			Icon:            "truck-medical",
			Description:     "Mobile emergency medical services. Dispatch available for critical situations.",
			Availability:    domain.AvailabilityAvailable,
			CurrentCapacity: 3,
			MaxCapacity:     5,
			Services:        []string{"Ambulance Transport", "On-site Triage", "Emergency Medical Care"},
			LastUpdate:      now.Add(-2 * time.Minute),
		},
	}
}

// SeedZones returns the initial hazard zone collection.
func SeedZones(now time.Time) []domain.HazardZone {
	return []domain.HazardZone{
		{
			ID:   "HTzone1",
			Name: "Artibonite Flood Plain",
			Type: domain.DisasterFlood,
			Area: domain.Area{Ring: []domain.Geo{
				{Lat: 19.20, Lng: -72.70},
				{Lat: 19.25, Lng: -72.65},
				{Lat: 19.18, Lng: -72.50},
				{Lat: 19.10, Lng: -72.60},
			}},
			Severity:    domain.SeverityHigh,
			LastUpdated: now.Add(-48 * time.Hour),
			Description: "Large agricultural area prone to seasonal flooding from the Artibonite River.",
		},
		{
			ID:   "HTzone2",
			Name: "Enriquillo-Plantain Garden Fault Zone Risk Area",
			Type: domain.DisasterEarthquake,
			Area: domain.Area{Ring: []domain.Geo{
				{Lat: 18.40, Lng: -73.00},
				{Lat: 18.42, Lng: -72.90},
				{Lat: 18.45, Lng: -72.80},
				{Lat: 18.48, Lng: -72.70},
			}},
			Severity:    domain.SeverityMedium,
			LastUpdated: now.Add(-96 * time.Hour),
			Description: "Seismic fault line running through the southern peninsula.",
		},
		{
			ID:   "HTzone3",
			Name: "Cap-Haïtien Coastal Surge Zone",
			Type: domain.DisasterHurricane,
			Area: domain.Area{
				Center: &domain.Geo{Lat: 19.7580, Lng: -72.2040},
				Radius: 2500,
			},
			Severity:    domain.SeverityLow,
			LastUpdated: now.Add(-24 * time.Hour),
			Description: "Low-lying coastal strip exposed to storm surge during hurricane season.",
		},
	}
}

// SeedNews returns the initial news article collection.
func SeedNews(now time.Time) []domain.NewsArticle {
	return []domain.NewsArticle{
		{
			ID:        "news1",
			Title:     "Heavy Rains Forecast for Southern Peninsula",
			Summary:   "Meteorological services warn of sustained heavy rainfall over Sud and Grand'Anse through the weekend, with elevated flood risk along river basins.",
			ImageURL:  "https://picsum.photos/seed/HTnewsFlood/400/200",
			Source:    "Haiti Met Service",
			Link:      "https://example.org/news/heavy-rains-south",
			Published: now.Add(-4 * time.Hour),
			TypeTags:  []domain.DisasterType{domain.DisasterFlood, domain.DisasterStorm},
		},
		{
			ID:        "news2",
			Title:     "Seismic Activity Recorded Near Enriquillo Fault",
			Summary:   "A series of minor tremors was recorded along the southern fault line. No damage reported; residents are advised to review earthquake safety steps.",
			ImageURL:  "https://picsum.photos/seed/HTnewsQuake/400/200",
			Source:    "Bureau of Mines and Energy",
			Link:      "https://example.org/news/seismic-activity",
			Published: now.Add(-9 * time.Hour),
			TypeTags:  []domain.DisasterType{domain.DisasterEarthquake},
		},
		{
			ID:        "news3",
			Title:     "New Water Distribution Points Open in Léogâne",
			Summary:   "Two additional purified water stations opened this week, extending coverage to the eastern districts.",
			ImageURL:  "https://picsum.photos/seed/HTnewsWater/400/200",
			Source:    "DINEPA",
			Link:      "https://example.org/news/water-points-leogane",
			Published: now.Add(-26 * time.Hour),
		},
	}
}
