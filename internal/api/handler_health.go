package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-api-backend/internal/errs"
)

// Health handles GET /healthz by pinging the database.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		e := errs.NewServiceUnavailableError("database unreachable")
		c.AbortWithStatusJSON(e.Status, e)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
