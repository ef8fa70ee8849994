// Package refdata holds the static reference tables of the engine: the
// Haiti region lookup, per-type default imagery, the home map view, and the
// seeded collections loaded at startup.
package refdata

import (
	"strings"

	"github.com/haitialert/alertnet/internal/domain"
)

// Home map view over Haiti.
var (
	HomeCenter = domain.Geo{Lat: 18.9712, Lng: -72.2852}
)

const (
	HomeZoom = 8

	// DefaultZoneRadius is the radius in meters of a zone derived from a
	// user report.
	DefaultZoneRadius = 500.0
)

// Region maps a known place label to its reference coordinate.
type Region struct {
	Name     string
	Location domain.Geo
}

// Regions lists the ten departments plus specific localities that the
// submission form offers as location labels.
var Regions = []Region{
	{Name: "Artibonite", Location: domain.Geo{Lat: 19.4500, Lng: -72.6833}},
	{Name: "Centre", Location: domain.Geo{Lat: 19.1500, Lng: -72.0167}},
	{Name: "Grand'Anse", Location: domain.Geo{Lat: 18.6500, Lng: -74.1167}},
	{Name: "Nippes", Location: domain.Geo{Lat: 18.4425, Lng: -73.0872}},
	{Name: "Nord", Location: domain.Geo{Lat: 19.7528, Lng: -72.1944}},
	{Name: "Nord-Est", Location: domain.Geo{Lat: 19.6667, Lng: -71.8333}},
	{Name: "Nord-Ouest", Location: domain.Geo{Lat: 19.9333, Lng: -72.8333}},
	{Name: "Ouest", Location: domain.Geo{Lat: 18.5944, Lng: -72.3074}},
	{Name: "Sud", Location: domain.Geo{Lat: 18.2000, Lng: -73.7500}},
	{Name: "Sud-Est", Location: domain.Geo{Lat: 18.2345, Lng: -72.5347}},
	{Name: "Léogâne", Location: domain.Geo{Lat: 18.5104, Lng: -72.6337}},
	{Name: "Petit Paradis", Location: domain.Geo{Lat: 18.5030, Lng: -72.6070}},
	{Name: "Gressier", Location: domain.Geo{Lat: 18.5500, Lng: -72.5167}},
	{Name: "Chardonnières", Location: domain.Geo{Lat: 18.2736, Lng: -74.1500}},
	{Name: "Petit Trou de Nippes", Location: domain.Geo{Lat: 18.5083, Lng: -73.5083}},
	{Name: "Corail", Location: domain.Geo{Lat: 18.5667, Lng: -73.8833}},
	{Name: "Môle Saint-Nicolas", Location: domain.Geo{Lat: 19.8000, Lng: -73.3667}},
	{Name: "Anse-à-Veau", Location: domain.Geo{Lat: 18.5000, Lng: -73.3500}},
	{Name: "Jérémie", Location: domain.Geo{Lat: 18.6500, Lng: -74.1167}},
	{Name: "Cité Soleil", Location: domain.Geo{Lat: 18.5780, Lng: -72.3377}},
	{Name: "Morne-à-Chandelle", Location: domain.Geo{Lat: 18.2345, Lng: -72.5347}},
	{Name: "Petit-Goâve", Location: domain.Geo{Lat: 18.4333, Lng: -72.8667}},
	{Name: "Port-de-Paix", Location: domain.Geo{Lat: 19.9333, Lng: -72.8333}},
	{Name: "Cap-Haïtien", Location: domain.Geo{Lat: 19.7528, Lng: -72.1944}},
	{Name: "Les Abricots", Location: domain.Geo{Lat: 18.6333, Lng: -74.3167}},
	{Name: "Saint-Louis-du-Sud", Location: domain.Geo{Lat: 18.2667, Lng: -73.5500}},
	{Name: "Baradères", Location: domain.Geo{Lat: 18.4833, Lng: -73.6333}},
	{Name: "Cavaillon", Location: domain.Geo{Lat: 18.3000, Lng: -73.6667}},
	{Name: "Fonds-des-Nègres", Location: domain.Geo{Lat: 18.4167, Lng: -73.3000}},
	{Name: "Tiburon", Location: domain.Geo{Lat: 18.3167, Lng: -74.3833}},
}

// LookupRegion resolves a location label to its reference coordinate.
// Matching is exact on the stable label, case-insensitive.
func LookupRegion(label string) (domain.Geo, bool) {
	for _, r := range Regions {
		if strings.EqualFold(r.Name, label) {
			return r.Location, true
		}
	}
	return domain.Geo{}, false
}

// defaultPhotoURLs maps each disaster type to a stock image used when a
// report is submitted without a photo.
var defaultPhotoURLs = map[domain.DisasterType]string{
	domain.DisasterFlood:      "https://images.pexels.com/photos/753619/pexels-photo-753619.jpeg",
	domain.DisasterEarthquake: "https://cdn.britannica.com/34/127134-050-49EC55CD/Building-foundation-earthquake-Japan-Kobe-January-1995.jpg",
	domain.DisasterFire:       "https://www.hdwallpapers.in/download/fire_red_orange_dark_4k_5k_hd_fire-3840x2160.jpg",
	domain.DisasterHurricane:  "https://www.shutterstock.com/shutterstock/videos/3539883861/thumb/1.jpg?ip=x480",
	domain.DisasterStorm:      "https://i.pinimg.com/736x/cd/19/cd/cd19cd3e1fec0a0d3290812942ab2d27.jpg",
	domain.DisasterLandslide:  "https://t3.ftcdn.net/jpg/01/38/22/68/360_F_138226873_ciwW3PX7AAVs8yGmmzDxAXHk9ryW8bBb.jpg",
	domain.DisasterOther:      "https://mountainhouse.com/cdn/shop/articles/key-west-storm-featured-image_1024x.jpg?v=1687570146",
}

// DefaultPhotoURL returns the stock image for a disaster type.
func DefaultPhotoURL(t domain.DisasterType) string {
	if url, ok := defaultPhotoURLs[t]; ok {
		return url
	}
	return defaultPhotoURLs[domain.DisasterOther]
}
