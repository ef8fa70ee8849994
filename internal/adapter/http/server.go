package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/haitialert/alertnet/internal/config"
)

// NewServer builds the HTTP server around the handler's routes. The map
// client is a browser app served from elsewhere, so CORS stays permissive.
func NewServer(cfg *config.Config, h *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	h.RegisterRoutes(router)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}
}
