// Package maprender keeps the rendering surface in sync with the visible
// subset of the store.
//
// The Reconciler owns the binding between entity ids and on-surface
// primitives; nothing else touches surface handles. Rendering is a full
// rebuild per entity class: cheap at this scale and trivially satisfies the
// invariant that the bound handles match the visible ids exactly.
package maprender

import (
	"github.com/haitialert/alertnet/internal/domain"
)

// Handle identifies one live primitive on the surface.
type Handle string

// MarkerStyle selects the glyph, color, and size of a point marker.
type MarkerStyle struct {
	Glyph  string `json:"glyph"`
	Color  string `json:"color"`
	SizePx int    `json:"size_px"`
}

// ShapeStyle selects the stroke and fill of a polygon or circle.
type ShapeStyle struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color"`
	FillOpacity float64 `json:"fill_opacity"`
	Weight      float64 `json:"weight"`
}

// BaseLayer names a tile style for the map background.
type BaseLayer string

const (
	BaseLayerStandard BaseLayer = "standard"
	BaseLayerDark     BaseLayer = "dark"
)

// Surface is the drawing capability the reconciler renders onto. Operations
// are fire-and-forget; implementations must tolerate removing or animating a
// handle that no longer exists.
type Surface interface {
	AddMarker(h Handle, at domain.Geo, style MarkerStyle, tooltip string)
	AddShape(h Handle, area domain.Area, style ShapeStyle, tooltip string)
	Remove(h Handle)
	SetAnimation(h Handle, class string)
	ClearAnimation(h Handle)
	FlyTo(center domain.Geo, zoom int)
	SetBaseLayer(layer BaseLayer)
}
