// Package http exposes the engine over a JSON API and the surface stream.
package http

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/maprender"
	"github.com/haitialert/alertnet/internal/news"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/pipeline"
	"github.com/haitialert/alertnet/internal/query"
	"github.com/haitialert/alertnet/internal/store"
)

// Handler wires the API routes to the engine components.
type Handler struct {
	store      *store.Store
	submitter  *pipeline.Submitter
	reconciler *maprender.Reconciler
	lock       *maprender.LocationLock
	center     *notify.Center
	analyzer   domain.Analyzer
	news       *news.Service
	surface    http.Handler
	logger     *slog.Logger
}

// NewHandler creates the API handler. surface serves the WebSocket stream.
func NewHandler(
	st *store.Store,
	submitter *pipeline.Submitter,
	reconciler *maprender.Reconciler,
	lock *maprender.LocationLock,
	center *notify.Center,
	analyzer domain.Analyzer,
	newsSvc *news.Service,
	surface http.Handler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:      st,
		submitter:  submitter,
		reconciler: reconciler,
		lock:       lock,
		center:     center,
		analyzer:   analyzer,
		news:       newsSvc,
		surface:    surface,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/reports", h.submitReport)
	r.PATCH("/api/reports/:id/status", h.updateReportStatus)
	r.PATCH("/api/zones/:id/severity", h.escalateZone)
	r.GET("/api/visible", h.getVisible)
	r.GET("/api/poi/:id", h.getPointOfInterest)
	r.GET("/api/news", h.listNews)
	r.GET("/api/news/:id", h.getNewsArticle)
	r.GET("/api/notification", h.getNotification)
	r.DELETE("/api/notification", h.dismissNotification)
	r.GET("/api/status", h.getStatus)
	r.POST("/api/analyze", h.analyze)
	r.POST("/api/map/filter", h.setFilter)
	r.POST("/api/map/contrast", h.setContrast)
	r.POST("/api/map/lock", h.toggleLock)
	r.DELETE("/api/map/lock", h.releaseLock)
	r.GET("/ws", gin.WrapH(h.surface))
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) submitReport(c *gin.Context) {
	var input domain.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.submitter.Submit(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *Handler) updateReportStatus(c *gin.Context) {
	var body struct {
		Status domain.ReportStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report status"})
		return
	}

	id := c.Param("id")
	if !h.store.UpdateReportStatus(id, body.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	report, _ := h.store.Report(id)
	c.JSON(http.StatusOK, report)
}

func (h *Handler) escalateZone(c *gin.Context) {
	var body struct {
		Severity domain.Severity `json:"severity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !body.Severity.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown severity"})
		return
	}

	id := c.Param("id")
	if !h.store.EscalateZone(id, body.Severity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
		return
	}

	zone, _ := h.store.Zone(id)
	c.JSON(http.StatusOK, zone)
}

func (h *Handler) getVisible(c *gin.Context) {
	filter := query.FilterAll
	if f := c.Query("filter"); f != "" {
		filter = query.Filter(f)
		if !filter.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
			return
		}
	}

	visible := query.ComputeVisible(h.store.Snapshot(), filter, c.Query("search"))
	c.JSON(http.StatusOK, visible)
}

func (h *Handler) getPointOfInterest(c *gin.Context) {
	id := c.Param("id")
	if report, ok := h.store.Report(id); ok {
		c.JSON(http.StatusOK, gin.H{"kind": "report", "report": report})
		return
	}
	if resource, ok := h.store.Resource(id); ok {
		c.JSON(http.StatusOK, gin.H{"kind": "resource", "resource": resource})
		return
	}
	if zone, ok := h.store.Zone(id); ok {
		c.JSON(http.StatusOK, gin.H{"kind": "zone", "zone": zone})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *Handler) listNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.Articles())
}

func (h *Handler) getNewsArticle(c *gin.Context) {
	article, ok := h.news.Article(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handler) getNotification(c *gin.Context) {
	n, ok := h.center.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) dismissNotification(c *gin.Context) {
	h.center.Dismiss()
	c.Status(http.StatusNoContent)
}

func (h *Handler) getStatus(c *gin.Context) {
	filter, search := h.reconciler.Filter()
	c.JSON(http.StatusOK, gin.H{
		"busy":     h.center.Busy(),
		"lock":     h.lock.State(),
		"contrast": h.reconciler.Contrast(),
		"filter":   filter,
		"search":   search,
	})
}

func (h *Handler) analyze(c *gin.Context) {
	var body struct {
		Description string `json:"description"`
		ImageBase64 string `json:"image_base64"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	var image []byte
	if body.ImageBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(body.ImageBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image encoding"})
			return
		}
		image = decoded
	}

	suggestion, err := h.analyzer.Analyze(c.Request.Context(), body.Description, image)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistance unavailable"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *Handler) setFilter(c *gin.Context) {
	var body struct {
		Filter query.Filter `json:"filter"`
		Search string       `json:"search"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Filter == "" {
		body.Filter = query.FilterAll
	}
	if !body.Filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}

	h.reconciler.SetFilter(body.Filter, body.Search)
	c.JSON(http.StatusOK, gin.H{"filter": body.Filter, "search": body.Search})
}

func (h *Handler) setContrast(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.reconciler.SetContrast(body.Enabled)
	c.JSON(http.StatusOK, gin.H{"contrast": body.Enabled})
}

func (h *Handler) toggleLock(c *gin.Context) {
	state, err := h.lock.Toggle(c.Request.Context())
	if err != nil {
		if errors.Is(err, maprender.ErrLockPending) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": state})
			return
		}
		// Position failures leave the lock disengaged; the client still
		// learns the resulting state.
		c.JSON(http.StatusOK, gin.H{"state": state, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *Handler) releaseLock(c *gin.Context) {
	if h.lock.State() == maprender.LockLocked {
		state, _ := h.lock.Toggle(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"state": state})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.lock.State()})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
