package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string  `json:"name" validate:"required"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl" validate:"max=3"`
	Occupancy int     `json:"occupancy" validate:"gt=0"`
}

func TestValidationError_FromValidator(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.Split(f.Tag.Get("json"), ",")[0]
	})
	err := v.Struct(sample{Rate: -1, ImageURL: "toolong", Occupancy: 0})
	require.Error(t, err)

	httpErr := ValidationError(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Error: "is required"},
		{Field: "rate", Error: "must be at least 0"},
		{Field: "imageUrl", Error: "must not exceed 3 characters"},
		{Field: "occupancy", Error: "must be greater than 0"},
	}, httpErr.Errors)
}

func TestValidationError_FromJSONTypeMismatch(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"rate":"cheap"}`), &s)
	require.Error(t, err)

	httpErr := ValidationError(err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "rate", httpErr.Errors[0].Field)
	assert.Equal(t, "must be of type float64", httpErr.Errors[0].Error)
}

func TestValidationError_Opaque(t *testing.T) {
	httpErr := ValidationError(errors.New("EOF"))
	assert.Empty(t, httpErr.Errors)
	assert.Equal(t, "Invalid request body: EOF", httpErr.Message)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", NewNotFoundError("villa not found").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalServerError().Status)
	assert.Equal(t, "Internal Server Error", NewInternalServerError().Message)
	assert.Equal(t, CodeVillaExists, NewBadRequestError("dup", CodeVillaExists).Code)
	assert.Equal(t, http.StatusServiceUnavailable, NewServiceUnavailableError("db down").Status)

	base := NewNotFoundError("a")
	cp := base.WithMessage("b")
	assert.Equal(t, "a", base.Message)
	assert.Equal(t, "b", cp.Message)
	assert.True(t, errors.Is(cp, &HTTPError{}))
}
