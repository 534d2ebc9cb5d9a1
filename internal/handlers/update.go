package handlers

//go:generate mockgen -source=update.go -destination=update_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/middlewares"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, account *models.Account, req models.AccountUpdate) (*models.Account, error)
}

// NewUpdateHandler returns an HTTP handler applying a partial profile update.
// @Summary Update profile
// @Description Applies the fields present in the body and returns the stored profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.AccountUpdate true "Fields to change"
// @Success 200 {object} models.AccountResponse "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/update [post]
// @Security BearerAuth
func NewUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			middlewares.WriteUnauthorized(w)
			return
		}

		var req models.AccountUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		updated, err := svc.Update(r.Context(), account, req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewAccountResponse(updated))
	}
}
