package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/middlewares"
	"github.com/dashmachine/dashmachine-api/internal/services"
	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// MessageResponse is the body of endpoints that only report an outcome.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: success
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

// writeError maps service errors onto HTTP responses.
func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error

	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrTokenInvalid),
		errors.Is(err, services.ErrAccountNotFound):
		middlewares.WriteUnauthorized(w)
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, services.ErrAccountExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Account already exists"})
	case errors.Is(err, services.ErrTooManyRequests):
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
