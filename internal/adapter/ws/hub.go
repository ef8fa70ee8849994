// Package ws streams rendering-surface operations to browser clients over
// WebSocket.
//
// The Hub implements maprender.Surface: every operation the reconciler
// issues is fanned out to connected clients as a JSON envelope, and the
// current primitive set is retained so a late-joining client starts from a
// full snapshot instead of an empty map.
package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/maprender"
)

// Operation names for the wire envelopes.
const (
	OpSnapshot       = "snapshot"
	OpAddMarker      = "add_marker"
	OpAddShape       = "add_shape"
	OpRemove         = "remove"
	OpSetAnimation   = "set_animation"
	OpClearAnimation = "clear_animation"
	OpFlyTo          = "fly_to"
	OpSetBaseLayer   = "set_base_layer"
)

// Envelope is one surface operation on the wire. Fields are populated per
// operation; absent fields are omitted.
type Envelope struct {
	Op      string                `json:"op"`
	Handle  maprender.Handle      `json:"handle,omitempty"`
	At      *domain.Geo           `json:"at,omitempty"`
	Zoom    int                   `json:"zoom,omitempty"`
	Marker  *maprender.MarkerStyle `json:"marker,omitempty"`
	Shape   *maprender.ShapeStyle  `json:"shape,omitempty"`
	Area    *domain.Area          `json:"area,omitempty"`
	Tooltip string                `json:"tooltip,omitempty"`
	Class   string                `json:"class,omitempty"`
	Layer   maprender.BaseLayer   `json:"layer,omitempty"`

	// Snapshot payload.
	Markers []Envelope `json:"markers,omitempty"`
	Shapes  []Envelope `json:"shapes,omitempty"`
}

// Hub fans surface operations out to every connected client.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu        sync.Mutex
	clients   map[*client]bool
	markers   map[maprender.Handle]Envelope
	shapes    map[maprender.Handle]Envelope
	baseLayer maprender.BaseLayer
}

// NewHub creates a Hub with no clients and the standard base layer.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:   make(map[*client]bool),
		markers:   make(map[maprender.Handle]Envelope),
		shapes:    make(map[maprender.Handle]Envelope),
		baseLayer: maprender.BaseLayerStandard,
	}
}

// ServeHTTP upgrades the connection, sends the retained snapshot, and keeps
// the client registered until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(conn, h)

	h.mu.Lock()
	h.clients[c] = true
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	c.enqueue(snapshot)

	go c.listenWrite()
	c.listenRead()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshotLocked() Envelope {
	snap := Envelope{Op: OpSnapshot, Layer: h.baseLayer}
	for _, e := range h.markers {
		snap.Markers = append(snap.Markers, e)
	}
	for _, e := range h.shapes {
		snap.Shapes = append(snap.Shapes, e)
	}
	return snap
}

func (h *Hub) broadcast(e Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.enqueue(e)
	}
}

// AddMarker implements maprender.Surface.
func (h *Hub) AddMarker(handle maprender.Handle, at domain.Geo, style maprender.MarkerStyle, tooltip string) {
	e := Envelope{Op: OpAddMarker, Handle: handle, At: &at, Marker: &style, Tooltip: tooltip}
	h.mu.Lock()
	h.markers[handle] = e
	for c := range h.clients {
		c.enqueue(e)
	}
	h.mu.Unlock()
}

// AddShape implements maprender.Surface.
func (h *Hub) AddShape(handle maprender.Handle, area domain.Area, style maprender.ShapeStyle, tooltip string) {
	e := Envelope{Op: OpAddShape, Handle: handle, Area: &area, Shape: &style, Tooltip: tooltip}
	h.mu.Lock()
	h.shapes[handle] = e
	for c := range h.clients {
		c.enqueue(e)
	}
	h.mu.Unlock()
}

// Remove implements maprender.Surface.
func (h *Hub) Remove(handle maprender.Handle) {
	e := Envelope{Op: OpRemove, Handle: handle}
	h.mu.Lock()
	delete(h.markers, handle)
	delete(h.shapes, handle)
	for c := range h.clients {
		c.enqueue(e)
	}
	h.mu.Unlock()
}

// SetAnimation implements maprender.Surface.
func (h *Hub) SetAnimation(handle maprender.Handle, class string) {
	h.broadcast(Envelope{Op: OpSetAnimation, Handle: handle, Class: class})
}

// ClearAnimation implements maprender.Surface.
func (h *Hub) ClearAnimation(handle maprender.Handle) {
	h.broadcast(Envelope{Op: OpClearAnimation, Handle: handle})
}

// FlyTo implements maprender.Surface.
func (h *Hub) FlyTo(center domain.Geo, zoom int) {
	h.broadcast(Envelope{Op: OpFlyTo, At: &center, Zoom: zoom})
}

// SetBaseLayer implements maprender.Surface.
func (h *Hub) SetBaseLayer(layer maprender.BaseLayer) {
	e := Envelope{Op: OpSetBaseLayer, Layer: layer}
	h.mu.Lock()
	h.baseLayer = layer
	for c := range h.clients {
		c.enqueue(e)
	}
	h.mu.Unlock()
}
