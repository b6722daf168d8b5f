// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Sentinel errors shared by repositories and services. Handlers translate
// them to HTTP status codes via Status; anything unrecognized is treated as
// a store failure and answered with a generic 500.
var (
	ErrInvalidInput = errors.New("datos de entrada invalidos")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("credenciales invalidas")
	ErrStore        = errors.New("error de almacenamiento")
)

// Status maps a taxonomy error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
