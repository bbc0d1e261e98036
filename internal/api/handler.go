package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-api-backend/internal/errs"
	"villa-api-backend/internal/mw"
	"villa-api-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store: s,
		log:   log,
	}
}

// fail writes err as an errs.HTTPError response. Errors that are not already
// HTTP errors become 404 for store.ErrNotFound and 500 otherwise.
func (h *Handler) fail(c *gin.Context, err error) {
	var httpErr *errs.HTTPError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, store.ErrNotFound):
		httpErr = errs.NewNotFoundError("resource not found")
	default:
		h.log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", mw.GetRequestID(c)),
		)
		httpErr = errs.NewInternalServerError()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(httpErr.Status, httpErr)
}

// positiveIntParam reads a path parameter that must be a positive integer.
func positiveIntParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError(name+" must be a positive integer", "",
			errs.FieldError{Field: name, Error: "must be a positive integer"})
	}
	return id, nil
}

// optionalIntQuery reads an optional integer query parameter.
func optionalIntQuery(c *gin.Context, name string) (int64, bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, errs.NewBadRequestError(name+" must be an integer", "",
			errs.FieldError{Field: name, Error: "must be an integer"})
	}
	return v, true, nil
}
