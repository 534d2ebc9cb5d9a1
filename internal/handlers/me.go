package handlers

import (
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/middlewares"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

// NewMeHandler returns the authenticated caller's profile.
// @Summary Current profile
// @Tags users
// @Produce json
// @Success 200 {object} models.AccountResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			middlewares.WriteUnauthorized(w)
			return
		}

		writeJSON(w, http.StatusOK, models.NewAccountResponse(account))
	}
}
