package handlers

//go:generate mockgen -source=create.go -destination=create_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, phone, password string, birthday *models.Date) error
}

// CreateAccountRequest represents the JSON body for registration
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Phone number
	// required: true
	// default: +15551234567
	Phone string `json:"phone" validate:"required,e164"`

	// Password
	// required: true
	// default: abc123
	Password string `json:"password" validate:"required,max=72"`

	// Birthday as YYYY-MM-DD
	// required: true
	// default: 1995-06-01
	Birthday *models.Date `json:"birthday" validate:"required"`
}

// NewCreateAccountHandler returns an HTTP handler for registration.
// @Summary Register
// @Description Creates an account for a phone number
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Registration"
// @Success 200 {object} handlers.MessageResponse "success"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Phone already registered"
// @Failure 422 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/create [post]
func NewCreateAccountHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Register(r.Context(), req.Phone, req.Password, req.Birthday); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	}
}
