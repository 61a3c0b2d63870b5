package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Authentication & Authorization Errors
var (
	ErrMissingToken = errors.New("missing access token")
	ErrExpiredToken = errors.New("expired access token")
	ErrInvalidToken = errors.New("invalid access token")
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrValidation       = errors.New("validation failed")
)

// FieldErrors accumulates per-field failure reasons before being raised as a
// validation error.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, reason string) {
	f[field] = append(f[field], reason)
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// NewValidationError reports one or more invalid request fields. The field
// map is surfaced to the caller as a structured per-field payload.
func NewValidationError(fields FieldErrors) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrValidation,
		Fields:     fields,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// ValidationFields extracts the per-field reasons from a validation error,
// nil when err is not one.
func ValidationFields(err error) map[string][]string {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) && errors.Is(apiErr, ErrValidation) {
		return apiErr.Fields
	}
	return nil
}

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing access token",
		Field:      "authorization",
	}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Details:    "Access token has expired",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid access token",
		Field:      "authorization",
	}
}

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
