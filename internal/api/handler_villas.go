package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"villa-api-backend/dto"
	"villa-api-backend/internal/errs"
	"villa-api-backend/internal/mapper"
	"villa-api-backend/internal/patch"
	"villa-api-backend/internal/store"
)

var errVillaExists = errs.NewBadRequestError("Villa already exists", errs.CodeVillaExists,
	errs.FieldError{Field: "name", Error: "villa already exists"})

// GetVillas handles GET /api/villas. Optional filters: occupancy (exact) and
// search (case-insensitive substring of the name).
func (h *Handler) GetVillas(c *gin.Context) {
	var preds []store.Predicate

	occupancy, ok, err := optionalIntQuery(c, "occupancy")
	if err != nil {
		h.fail(c, err)
		return
	}
	if ok {
		preds = append(preds, store.OccupancyEquals(int(occupancy)))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		preds = append(preds, store.NameContains(search))
	}

	villas, err := h.store.Villas().GetAll(c.Request.Context(), preds...)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.VillasToDTO(villas))
}

// GetVilla handles GET /api/villas/:id.
func (h *Handler) GetVilla(c *gin.Context) {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	villa, err := h.store.Villas().Get(c.Request.Context(), true, store.ByID(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	if villa == nil {
		h.fail(c, errs.NewNotFoundError(fmt.Sprintf("villa %d not found", id)))
		return
	}
	c.JSON(http.StatusOK, mapper.VillaToDTO(*villa))
}

// CreateVilla handles POST /api/villas.
func (h *Handler) CreateVilla(c *gin.Context) {
	var req dto.VillaCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errs.ValidationError(err))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := requireName(req.Name); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.ensureNameAvailable(c, req.Name, 0); err != nil {
		h.fail(c, err)
		return
	}

	villa := mapper.VillaFromCreate(req)
	if err := h.store.Villas().Create(c.Request.Context(), &villa); err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/villas/%d", villa.ID))
	c.JSON(http.StatusCreated, mapper.VillaToDTO(villa))
}

// UpdateVilla handles PUT /api/villas/:id, a full replace.
func (h *Handler) UpdateVilla(c *gin.Context) {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	var req dto.VillaUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errs.ValidationError(err))
		return
	}
	if req.ID != id {
		h.fail(c, errs.NewBadRequestError("id in body does not match path", "",
			errs.FieldError{Field: "id", Error: fmt.Sprintf("must equal %d", id)}))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := requireName(req.Name); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.ensureNameAvailable(c, req.Name, id); err != nil {
		h.fail(c, err)
		return
	}

	villa := mapper.VillaFromUpdate(req)
	if err := h.store.Villas().Update(c.Request.Context(), &villa); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = errs.NewNotFoundError(fmt.Sprintf("villa %d not found", id))
		}
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PatchVilla handles PATCH /api/villas/:id with an RFC 6902 document. The
// operations address the VillaUpdateDTO shape, so only its fields can change.
func (h *Handler) PatchVilla(c *gin.Context) {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, errs.NewBadRequestError("could not read request body", ""))
		return
	}
	ops, err := patch.Decode(body)
	if err != nil {
		h.fail(c, patchError(err))
		return
	}

	ctx := c.Request.Context()
	current, err := h.store.Villas().Get(ctx, false, store.ByID(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	if current == nil {
		h.fail(c, errs.NewBadRequestError(fmt.Sprintf("villa %d does not exist", id), ""))
		return
	}

	doc := mapper.VillaToUpdate(*current)
	if err := patch.Apply(ops, &doc); err != nil {
		h.fail(c, patchError(err))
		return
	}
	if doc.ID != id {
		h.fail(c, errs.NewBadRequestError("patch could not be applied", errs.CodeInvalidPatch,
			errs.FieldError{Field: "id", Error: "cannot be changed"}))
		return
	}
	doc.Name = strings.TrimSpace(doc.Name)
	if err := requireName(doc.Name); err != nil {
		h.fail(c, err)
		return
	}
	if !strings.EqualFold(doc.Name, current.Name) {
		if err := h.ensureNameAvailable(c, doc.Name, id); err != nil {
			h.fail(c, err)
			return
		}
	}

	villa := mapper.VillaFromUpdate(doc)
	if err := h.store.Villas().Update(ctx, &villa); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = errs.NewBadRequestError(fmt.Sprintf("villa %d does not exist", id), "")
		}
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteVilla handles DELETE /api/villas/:id.
func (h *Handler) DeleteVilla(c *gin.Context) {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	villa, err := h.store.Villas().Get(ctx, true, store.ByID(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	if villa == nil {
		h.fail(c, errs.NewNotFoundError(fmt.Sprintf("villa %d not found", id)))
		return
	}

	if err := h.store.Villas().Remove(ctx, villa); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = errs.NewNotFoundError(fmt.Sprintf("villa %d not found", id))
		}
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ensureNameAvailable rejects a name already used by a villa other than self.
// The check is advisory: a concurrent writer can still take the name.
func (h *Handler) ensureNameAvailable(c *gin.Context, name string, self int64) error {
	preds := []store.Predicate{store.NameEqualFold(name)}
	if self > 0 {
		preds = append(preds, store.ExcludeID(self))
	}
	other, err := h.store.Villas().Get(c.Request.Context(), false, preds...)
	if err != nil {
		return err
	}
	if other != nil {
		return errVillaExists
	}
	return nil
}

func requireName(name string) error {
	if name == "" {
		return errs.NewBadRequestError("Validation failed", "",
			errs.FieldError{Field: "name", Error: "is required"})
	}
	return nil
}

func patchError(err error) error {
	var pErr *patch.Error
	if errors.As(err, &pErr) {
		return errs.NewBadRequestError(pErr.Message, errs.CodeInvalidPatch, pErr.Fields...)
	}
	return err
}
