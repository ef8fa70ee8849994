package maprender

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/query"
	"github.com/haitialert/alertnet/internal/store"
)

// arrivalAnimation is the transient class applied to a freshly submitted
// report's marker, cleared again after arrivalDuration.
const (
	arrivalAnimation = "marker-bounce-in"
	arrivalDuration  = 600 * time.Millisecond
)

// autoSimSubmitter labels synthetic reports that must not steal the camera.
const autoSimSubmitter = "AutoSim"

// Reconciler maintains a 1:1 binding between visible entities and surface
// primitives. Each store change triggers a rebuild of the affected class:
// every old primitive is removed before the new set is drawn, so the bound
// handle set always equals the visible id set afterwards.
type Reconciler struct {
	surface         Surface
	store           *store.Store
	clock           clockwork.Clock
	attentionWindow time.Duration
	logger          *slog.Logger
	metrics         *observability.Metrics

	mu       sync.Mutex
	filter   query.Filter
	search   string
	contrast bool
	bindings map[store.Class]map[string]Handle
}

// NewReconciler creates a Reconciler with the default All filter. Nothing is
// drawn until the first reconcile.
func NewReconciler(
	surface Surface,
	st *store.Store,
	clock clockwork.Clock,
	attentionWindow time.Duration,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Reconciler {
	bindings := make(map[store.Class]map[string]Handle, len(store.Classes))
	for _, class := range store.Classes {
		bindings[class] = make(map[string]Handle)
	}
	return &Reconciler{
		surface:         surface,
		store:           st,
		clock:           clock,
		attentionWindow: attentionWindow,
		logger:          logger,
		metrics:         metrics,
		filter:          query.FilterAll,
		bindings:        bindings,
	}
}

// Run consumes store change events until ctx is done or the store closes.
func (r *Reconciler) Run(ctx context.Context) {
	id, events := r.store.Watch()
	defer r.store.Unwatch(id)

	r.ReconcileAll()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			r.Reconcile(e.Class)
		}
	}
}

// SetFilter replaces the category gate and search term, then redraws
// everything.
func (r *Reconciler) SetFilter(filter query.Filter, search string) {
	r.mu.Lock()
	r.filter = filter
	r.search = search
	r.mu.Unlock()
	r.ReconcileAll()
}

// Filter returns the active category gate and search term.
func (r *Reconciler) Filter() (query.Filter, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter, r.search
}

// SetContrast swaps the base layer and restyles every primitive. The redraw
// preserves the binding key set; only colors change.
func (r *Reconciler) SetContrast(on bool) {
	r.mu.Lock()
	r.contrast = on
	r.mu.Unlock()

	if on {
		r.surface.SetBaseLayer(BaseLayerDark)
	} else {
		r.surface.SetBaseLayer(BaseLayerStandard)
	}
	r.ReconcileAll()
}

// Contrast reports whether the dark high-contrast theme is active.
func (r *Reconciler) Contrast() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contrast
}

// ReconcileAll rebuilds all three entity classes.
func (r *Reconciler) ReconcileAll() {
	for _, class := range store.Classes {
		r.Reconcile(class)
	}
}

// Reconcile rebuilds one entity class from the current visible subset.
func (r *Reconciler) Reconcile(class store.Class) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vis := query.ComputeVisible(r.store.Snapshot(), r.filter, r.search)

	for _, h := range r.bindings[class] {
		r.surface.Remove(h)
	}
	r.bindings[class] = make(map[string]Handle)

	switch class {
	case store.ClassReports:
		r.drawReports(vis.Reports)
	case store.ClassResources:
		r.drawResources(vis.Resources)
	case store.ClassZones:
		r.drawZones(vis.Zones)
	}

	r.metrics.ReconcilePasses.WithLabelValues(string(class)).Inc()
	r.metrics.VisiblePrimitives.WithLabelValues(string(class)).Set(float64(len(r.bindings[class])))
	r.logger.Debug("reconciled", "class", class, "primitives", len(r.bindings[class]))
}

// Bound returns the handle currently bound to an entity id.
func (r *Reconciler) Bound(class store.Class, id string) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.bindings[class][id]
	return h, ok
}

// BoundIDs returns the ids currently bound for a class.
func (r *Reconciler) BoundIDs(class store.Class) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.bindings[class]))
	for id := range r.bindings[class] {
		ids = append(ids, id)
	}
	return ids
}

func (r *Reconciler) drawReports(reports []domain.Report) {
	for _, rep := range reports {
		if rep.Location == nil {
			continue
		}
		h := Handle("report:" + rep.ID)
		r.surface.AddMarker(h, *rep.Location, ReportMarkerStyle(rep.Status, r.contrast), ReportTooltip(rep))
		r.bindings[store.ClassReports][rep.ID] = h

		if r.wantsAttention(rep) {
			r.flyTo(*rep.Location, ZoomReportAttention)
			r.surface.SetAnimation(h, arrivalAnimation)
			r.clock.AfterFunc(arrivalDuration, func() {
				r.surface.ClearAnimation(h)
			})
		}
	}
}

func (r *Reconciler) drawResources(resources []domain.Resource) {
	for _, res := range resources {
		h := Handle("resource:" + res.ID)
		r.surface.AddMarker(h, res.Location, ResourceMarkerStyle(res.Category, r.contrast), ResourceTooltip(res))
		r.bindings[store.ClassResources][res.ID] = h
	}
}

func (r *Reconciler) drawZones(zones []domain.HazardZone) {
	for _, z := range zones {
		h := Handle("zone:" + z.ID)
		r.surface.AddShape(h, z.Area, ZoneShapeStyle(z.Severity, r.contrast), ZoneTooltip(z))
		r.bindings[store.ClassZones][z.ID] = h

		if domain.IsDerivedZoneID(z.ID) && z.Area.IsCircle() && r.clock.Since(z.LastUpdated) < r.attentionWindow {
			r.flyTo(*z.Area.Center, ZoomZoneAttention)
		}
	}
}

// wantsAttention reports whether a freshly arrived report should pull the
// camera: recent, still actionable, and not synthetic.
func (r *Reconciler) wantsAttention(rep domain.Report) bool {
	if rep.Status != domain.StatusNew && rep.Status != domain.StatusUnderReview {
		return false
	}
	if rep.Submitter == autoSimSubmitter {
		return false
	}
	return r.clock.Since(rep.Timestamp) < r.attentionWindow
}

func (r *Reconciler) flyTo(at domain.Geo, zoom int) {
	r.surface.FlyTo(at, zoom)
	r.metrics.CameraMoves.Inc()
}
