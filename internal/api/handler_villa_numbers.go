package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-api-backend/dto"
	"villa-api-backend/internal/errs"
	"villa-api-backend/internal/mapper"
	"villa-api-backend/internal/model"
	"villa-api-backend/internal/store"
)

// GetVillaNumbers handles GET /api/villa-numbers, optionally filtered by villaId.
func (h *Handler) GetVillaNumbers(c *gin.Context) {
	var preds []store.Predicate

	villaID, ok, err := optionalIntQuery(c, "villaId")
	if err != nil {
		h.fail(c, err)
		return
	}
	if ok {
		preds = append(preds, store.ByVillaID(villaID))
	}

	numbers, err := h.store.VillaNumbers().GetAll(c.Request.Context(), preds...)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.VillaNumbersToDTO(numbers))
}

// GetVillaNumber handles GET /api/villa-numbers/:villaNo.
func (h *Handler) GetVillaNumber(c *gin.Context) {
	no, err := positiveIntParam(c, "villaNo")
	if err != nil {
		h.fail(c, err)
		return
	}

	number, err := h.store.VillaNumbers().Get(c.Request.Context(), true, store.ByVillaNo(no))
	if err != nil {
		h.fail(c, err)
		return
	}
	if number == nil {
		h.fail(c, errs.NewNotFoundError(fmt.Sprintf("villa number %d not found", no)))
		return
	}
	c.JSON(http.StatusOK, mapper.VillaNumberToDTO(*number))
}

// CreateVillaNumber handles POST /api/villa-numbers.
func (h *Handler) CreateVillaNumber(c *gin.Context) {
	var req dto.VillaNumberCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errs.ValidationError(err))
		return
	}

	ctx := c.Request.Context()
	existing, err := h.store.VillaNumbers().Get(ctx, false, store.ByVillaNo(req.VillaNo))
	if err != nil {
		h.fail(c, err)
		return
	}
	if existing != nil {
		h.fail(c, errs.NewBadRequestError("Villa number already exists", errs.CodeVillaNumberExists,
			errs.FieldError{Field: "villaNo", Error: "villa number already exists"}))
		return
	}
	if err := h.ensureVillaExists(c, req.VillaID); err != nil {
		h.fail(c, err)
		return
	}

	number := mapper.VillaNumberFromCreate(req)
	if err := h.store.VillaNumbers().Create(ctx, &number); err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/villa-numbers/%d", number.VillaNo))
	c.JSON(http.StatusCreated, mapper.VillaNumberToDTO(number))
}

// UpdateVillaNumber handles PUT /api/villa-numbers/:villaNo.
func (h *Handler) UpdateVillaNumber(c *gin.Context) {
	no, err := positiveIntParam(c, "villaNo")
	if err != nil {
		h.fail(c, err)
		return
	}

	var req dto.VillaNumberUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errs.ValidationError(err))
		return
	}
	if req.VillaNo != no {
		h.fail(c, errs.NewBadRequestError("villaNo in body does not match path", "",
			errs.FieldError{Field: "villaNo", Error: fmt.Sprintf("must equal %d", no)}))
		return
	}
	if err := h.ensureVillaExists(c, req.VillaID); err != nil {
		h.fail(c, err)
		return
	}

	number := mapper.VillaNumberFromUpdate(req)
	if err := h.store.VillaNumbers().Update(c.Request.Context(), &number); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = errs.NewNotFoundError(fmt.Sprintf("villa number %d not found", no))
		}
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteVillaNumber handles DELETE /api/villa-numbers/:villaNo.
func (h *Handler) DeleteVillaNumber(c *gin.Context) {
	no, err := positiveIntParam(c, "villaNo")
	if err != nil {
		h.fail(c, err)
		return
	}

	number := model.VillaNumber{VillaNo: no}
	if err := h.store.VillaNumbers().Remove(c.Request.Context(), &number); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = errs.NewNotFoundError(fmt.Sprintf("villa number %d not found", no))
		}
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ensureVillaExists(c *gin.Context, villaID int64) error {
	villa, err := h.store.Villas().Get(c.Request.Context(), false, store.ByID(villaID))
	if err != nil {
		return err
	}
	if villa == nil {
		return errs.NewBadRequestError("Villa ID is invalid", errs.CodeInvalidVillaID,
			errs.FieldError{Field: "villaId", Error: fmt.Sprintf("villa %d does not exist", villaID)})
	}
	return nil
}
