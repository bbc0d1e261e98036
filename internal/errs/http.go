package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Named validation codes.
const (
	CodeVillaExists       = "VILLA_ALREADY_EXISTS"
	CodeVillaNumberExists = "VILLA_NUMBER_ALREADY_EXISTS"
	CodeInvalidVillaID    = "INVALID_VILLA_ID"
	CodeInvalidPatch      = "INVALID_PATCH"
)

// NewBadRequestError creates a 400 error. An empty code defaults to BAD_REQUEST.
func NewBadRequestError(message, code string, fieldErrors ...FieldError) *HTTPError {
	if code == "" {
		code = statusCode(http.StatusBadRequest)
	}
	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 error. The message is the generic
// status text; the cause is never sent to the client.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewServiceUnavailableError creates a 503 error.
func NewServiceUnavailableError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusServiceUnavailable),
		Message: message,
		Status:  http.StatusServiceUnavailable,
	}
}

// ValidationError converts a binding or validation failure into a 400 with
// field-level errors where they can be recovered.
func ValidationError(err error) *HTTPError {
	fieldErrors := FieldErrors(err)
	if len(fieldErrors) == 0 {
		return NewBadRequestError("Invalid request body: "+err.Error(), "")
	}
	return NewBadRequestError("Validation failed", "", fieldErrors...)
}

// FieldErrors extracts per-field problems from validator and JSON decoding
// errors. It returns nil for any other error. Field names are whatever the
// validator reports, see validation.New for JSON names.
func FieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make([]FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			out = append(out, FieldError{Field: fe.Field(), Error: describe(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", typeErr.Type.Kind()),
		}}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
