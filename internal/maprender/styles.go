package maprender

import (
	"fmt"

	"github.com/haitialert/alertnet/internal/domain"
)

// Marker sizes and camera zoom levels.
const (
	reportMarkerSize   = 22
	resourceMarkerSize = 24

	ZoomReportAttention = 14
	ZoomZoneAttention   = 13
	ZoomLocationLock    = 15
)

const (
	colorAlertRed    = "#DC2626"
	colorPrimaryBlue = "#2563EB"
)

// ReportMarkerStyle picks the glyph and color for a report's triage status.
func ReportMarkerStyle(status domain.ReportStatus, contrast bool) MarkerStyle {
	var glyph string
	switch status {
	case domain.StatusVerified:
		glyph = "check-circle"
	case domain.StatusUnderReview:
		glyph = "circle-exclamation"
	case domain.StatusDuplicate:
		glyph = "clone"
	default:
		glyph = "triangle-exclamation"
	}

	var color string
	if contrast {
		switch status {
		case domain.StatusVerified:
			color = "#34D399"
		case domain.StatusUnderReview:
			color = "#FBBF24"
		case domain.StatusNew:
			color = "#60A5FA"
		default:
			color = "#A0A0A0"
		}
	} else {
		switch status {
		case domain.StatusVerified:
			color = "#10B981"
		case domain.StatusUnderReview:
			color = "#F59E0B"
		case domain.StatusNew:
			color = colorPrimaryBlue
		default:
			color = "#52525B"
		}
	}

	return MarkerStyle{Glyph: glyph, Color: color, SizePx: reportMarkerSize}
}

// ResourceMarkerStyle picks the glyph and color for a resource category.
func ResourceMarkerStyle(category domain.ResourceCategory, contrast bool) MarkerStyle {
	var glyph string
	switch category {
	case domain.CategoryMedical:
		glyph = "kit-medical"
	case domain.CategoryFood:
		glyph = "bowl-food"
	case domain.CategoryShelter:
		glyph = "house-chimney-user"
	case domain.CategoryWater:
		glyph = "water"
	case domain.CategoryEmergencyServices:
		glyph = "truck-medical"
	default:
		glyph = "map-marker-alt"
	}

	var color string
	if contrast {
		switch category {
		case domain.CategoryMedical:
			color = colorAlertRed
		case domain.CategoryShelter:
			color = "#38BDF8"
		case domain.CategoryWater:
			color = "#0EA5E9"
		case domain.CategoryFood:
			color = "#A3E635"
		case domain.CategoryEmergencyServices:
			color = "#FACC15"
		default:
			color = "#9CA3AF"
		}
	} else {
		switch category {
		case domain.CategoryMedical:
			color = colorAlertRed
		case domain.CategoryShelter:
			color = colorPrimaryBlue
		case domain.CategoryWater:
			color = "#0284C7"
		case domain.CategoryFood:
			color = "#65A30D"
		case domain.CategoryEmergencyServices:
			color = "#D97706"
		default:
			color = "#4B5563"
		}
	}

	return MarkerStyle{Glyph: glyph, Color: color, SizePx: resourceMarkerSize}
}

// ZoneShapeStyle picks the fill tier for a zone's severity.
func ZoneShapeStyle(severity domain.Severity, contrast bool) ShapeStyle {
	var color string
	switch severity {
	case domain.SeverityHigh:
		color = colorAlertRed
	case domain.SeverityMedium:
		if contrast {
			color = "#FBBF24"
		} else {
			color = "#F59E0B"
		}
	default:
		if contrast {
			color = "#38BDF8"
		} else {
			color = "#0EA5E9"
		}
	}
	return ShapeStyle{Color: color, FillColor: color, FillOpacity: 0.35, Weight: 1.5}
}

// ReportTooltip renders a report's hover text: type, status, and the first
// fifty characters of the description.
func ReportTooltip(r domain.Report) string {
	desc := []rune(r.Description)
	if len(desc) > 50 {
		desc = desc[:50]
	}
	return fmt.Sprintf("%s (%s)\n%s...", r.Type, r.Status, string(desc))
}

// ResourceTooltip renders a resource's hover text.
func ResourceTooltip(res domain.Resource) string {
	return fmt.Sprintf("%s\n%s", res.Name, res.Category)
}

// ZoneTooltip renders a zone's hover text.
func ZoneTooltip(z domain.HazardZone) string {
	return fmt.Sprintf("%s\nSeverity: %s", z.Name, z.Severity)
}
