package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"villa-api-backend/config"
	"villa-api-backend/internal/mw"
	"villa-api-backend/internal/store"
	"villa-api-backend/internal/validation"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg config.ServerConfig, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	validation.RegisterWithGin()

	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(log), mw.Recovery(log), mw.Metrics())

	handler := NewHandler(s, log)

	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API group
	api := r.Group("/api")
	api.Use(mw.RateLimiter(mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)))
	if cfg.CacheTTLSeconds > 0 {
		api.Use(mw.NewResponseCache(time.Duration(cfg.CacheTTLSeconds) * time.Second).Handler())
	}
	{
		api.GET("/villas", handler.GetVillas)
		api.GET("/villas/:id", handler.GetVilla)
		api.POST("/villas", handler.CreateVilla)
		api.PUT("/villas/:id", handler.UpdateVilla)
		api.PATCH("/villas/:id", handler.PatchVilla)
		api.DELETE("/villas/:id", handler.DeleteVilla)

		api.GET("/villa-numbers", handler.GetVillaNumbers)
		api.GET("/villa-numbers/:villaNo", handler.GetVillaNumber)
		api.POST("/villa-numbers", handler.CreateVillaNumber)
		api.PUT("/villa-numbers/:villaNo", handler.UpdateVillaNumber)
		api.DELETE("/villa-numbers/:villaNo", handler.DeleteVillaNumber)
	}

	return r
}
