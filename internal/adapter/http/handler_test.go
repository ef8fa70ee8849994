package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/maprender"
	"github.com/haitialert/alertnet/internal/news"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/pipeline"
	"github.com/haitialert/alertnet/internal/query"
	"github.com/haitialert/alertnet/internal/refdata"
	"github.com/haitialert/alertnet/internal/store"
)

const testDelay = 10 * time.Second

type nopSurface struct{}

func (nopSurface) AddMarker(maprender.Handle, domain.Geo, maprender.MarkerStyle, string) {}
func (nopSurface) AddShape(maprender.Handle, domain.Area, maprender.ShapeStyle, string)  {}
func (nopSurface) Remove(maprender.Handle)                                               {}
func (nopSurface) SetAnimation(maprender.Handle, string)                                 {}
func (nopSurface) ClearAnimation(maprender.Handle)                                       {}
func (nopSurface) FlyTo(domain.Geo, int)                                                 {}
func (nopSurface) SetBaseLayer(maprender.BaseLayer)                                      {}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(context.Context, string) error { return nil }

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, domain.AlertMessage) error { return nil }

type stubAnalyzer struct {
	suggestion domain.Suggestion
	err        error
}

func (a *stubAnalyzer) Analyze(context.Context, string, []byte) (domain.Suggestion, error) {
	return a.suggestion, a.err
}

type stubProvider struct {
	pos domain.Geo
	err error
}

func (p *stubProvider) RequestPosition(context.Context) (domain.Geo, error) {
	return p.pos, p.err
}

type apiFixture struct {
	clock     *clockwork.FakeClock
	store     *store.Store
	center    *notify.Center
	submitter *pipeline.Submitter
	analyzer  *stubAnalyzer
	provider  *stubProvider
	router    *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()

	f := &apiFixture{
		clock:    clock,
		store:    store.New(clock, logger, metrics),
		center:   notify.NewCenter(clockwork.NewFakeClock(), 7*time.Second, logger, metrics),
		analyzer: &stubAnalyzer{},
		provider: &stubProvider{pos: domain.Geo{Lat: 18.55, Lng: -72.33}},
	}
	f.submitter = pipeline.NewSubmitter(
		f.store, f.center, nopAnnouncer{}, nopDispatcher{},
		clock, testDelay, "7675072828", logger, metrics,
	)
	reconciler := maprender.NewReconciler(nopSurface{}, f.store, clock, 10*time.Second, logger, metrics)
	lock := maprender.NewLocationLock(nopSurface{}, f.provider, f.center, logger, metrics)
	newsSvc := news.NewService(clock, time.Minute, func(ctx context.Context) ([]domain.NewsArticle, error) {
		return refdata.SeedNews(clock.Now()), nil
	}, logger)
	newsSvc.Load(refdata.SeedNews(clock.Now()))

	handler := NewHandler(f.store, f.submitter, reconciler, lock, f.center, f.analyzer, newsSvc, http.NotFoundHandler(), logger)
	f.router = gin.New()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitReport_Accepted(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/reports", domain.ReportInput{
		Type:         domain.DisasterFlood,
		Description:  "River overflow near market",
		LocationText: "Artibonite",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	f.clock.BlockUntil(1)
	f.clock.Advance(testDelay)
	f.submitter.Wait()

	assert.Len(t, f.store.Snapshot().Reports, 1)
}

func TestSubmitReport_ValidationFailure(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/reports", domain.ReportInput{
		Type:        domain.DisasterFlood,
		Description: "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/reports", gin.H{"type": 12345})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReportStatus(t *testing.T) {
	f := newAPIFixture(t)
	r := f.store.AddReport(domain.ReportInput{
		Type:         domain.DisasterFlood,
		Description:  "River overflow near market",
		LocationText: "Artibonite",
	})

	w := f.do(t, http.MethodPatch, "/api/reports/"+r.ID+"/status", gin.H{"status": "Verified"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.Report](t, w)
	assert.Equal(t, domain.StatusVerified, updated.Status)

	zone, ok := f.store.Zone(domain.DerivedZoneID(r.ID))
	require.True(t, ok)
	assert.Equal(t, domain.SeverityHigh, zone.Severity)

	w = f.do(t, http.MethodPatch, "/api/reports/report-missing/status", gin.H{"status": "Verified"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPatch, "/api/reports/"+r.ID+"/status", gin.H{"status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEscalateZone(t *testing.T) {
	f := newAPIFixture(t)
	f.store.LoadSeed(nil, nil, refdata.SeedZones(f.clock.Now()))
	zones := f.store.Snapshot().Zones
	require.NotEmpty(t, zones)
	id := zones[0].ID

	w := f.do(t, http.MethodPatch, "/api/zones/"+id+"/severity", gin.H{"severity": "High"})
	require.Equal(t, http.StatusOK, w.Code)
	zone := decode[domain.HazardZone](t, w)
	assert.Equal(t, domain.SeverityHigh, zone.Severity)

	w = f.do(t, http.MethodPatch, "/api/zones/zone-missing/severity", gin.H{"severity": "High"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPatch, "/api/zones/"+id+"/severity", gin.H{"severity": "Catastrophic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVisible(t *testing.T) {
	f := newAPIFixture(t)
	f.store.LoadSeed(
		refdata.SeedReports(f.clock.Now()),
		refdata.SeedResources(f.clock.Now()),
		refdata.SeedZones(f.clock.Now()),
	)

	w := f.do(t, http.MethodGet, "/api/visible?filter=Shelters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	visible := decode[query.Visible](t, w)
	assert.Empty(t, visible.Reports)
	assert.Empty(t, visible.Zones)
	for _, res := range visible.Resources {
		assert.Equal(t, domain.CategoryShelter, res.Category)
	}

	w = f.do(t, http.MethodGet, "/api/visible?filter=Helipads", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPointOfInterest(t *testing.T) {
	f := newAPIFixture(t)
	r := f.store.AddReport(domain.ReportInput{Type: domain.DisasterFire, Description: "fire"})

	w := f.do(t, http.MethodGet, "/api/poi/"+r.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "report", body["kind"])

	w = f.do(t, http.MethodGet, "/api/poi/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/notification", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	f.center.Show(notify.KindSuccess, "done")
	w = f.do(t, http.MethodGet, "/api/notification", nil)
	require.Equal(t, http.StatusOK, w.Code)
	n := decode[notify.Notification](t, w)
	assert.Equal(t, "done", n.Message)

	w = f.do(t, http.MethodDelete, "/api/notification", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(t, http.MethodGet, "/api/notification", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.center.SetBusy(true)

	w := f.do(t, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, true, body["busy"])
	assert.Equal(t, "unlocked", body["lock"])
	assert.Equal(t, "All", body["filter"])
}

func TestAnalyze(t *testing.T) {
	f := newAPIFixture(t)
	f.analyzer.suggestion = domain.Suggestion{Summary: "Flooding", SuggestedType: "Flood", SafetyTip: "Move up."}

	w := f.do(t, http.MethodPost, "/api/analyze", gin.H{"description": "water rising"})
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[domain.Suggestion](t, w)
	assert.Equal(t, "Flood", s.SuggestedType)

	w = f.do(t, http.MethodPost, "/api/analyze", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/analyze", gin.H{"description": "x", "image_base64": "!!!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.analyzer.err = errors.New("model offline")
	w = f.do(t, http.MethodPost, "/api/analyze", gin.H{"description": "water rising"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLockEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/map/lock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "locked", body["state"])

	w = f.do(t, http.MethodDelete, "/api/map/lock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[map[string]any](t, w)
	assert.Equal(t, "unlocked", body["state"])

	f.provider.err = errors.New("no signal")
	w = f.do(t, http.MethodPost, "/api/map/lock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[map[string]any](t, w)
	assert.Equal(t, "unlocked", body["state"])
	assert.NotEmpty(t, body["error"])
}

func TestMapFilterAndContrast(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/map/filter", gin.H{"filter": "Disasters", "search": "flood"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/map/filter", gin.H{"filter": "Helipads"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/map/contrast", gin.H{"enabled": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/status", nil)
	body := decode[map[string]any](t, w)
	assert.Equal(t, true, body["contrast"])
	assert.Equal(t, "Disasters", body["filter"])
	assert.Equal(t, "flood", body["search"])
}

func TestNewsEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, w.Code)
	articles := decode[[]domain.NewsArticle](t, w)
	require.NotEmpty(t, articles)

	w = f.do(t, http.MethodGet, "/api/news/"+articles[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/news/news-missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
