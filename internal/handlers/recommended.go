package handlers

//go:generate mockgen -source=recommended.go -destination=recommended_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dashmachine/dashmachine-api/internal/middlewares"
	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// Recommender defines the interface that the recommendation service must implement.
type Recommender interface {
	Recommend(ctx context.Context, account *models.Account, ageMin, ageMax *int, activities []string) ([]models.Account, error)
}

// NewRecommendedHandler returns candidate profiles for the caller.
// @Summary Recommended profiles
// @Tags users
// @Produce json
// @Param age_min query int false "Minimum age"
// @Param age_max query int false "Maximum age"
// @Param activities query []string false "Activities" collectionFormat(multi)
// @Success 200 {array} models.CandidateResponse "Candidates"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid age bounds"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/recommended [get]
// @Security BearerAuth
func NewRecommendedHandler(svc Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			middlewares.WriteUnauthorized(w)
			return
		}

		query := r.URL.Query()
		ageMin, err := optionalInt(query.Get("age_min"), "age_min")
		if err != nil {
			writeError(w, err)
			return
		}
		ageMax, err := optionalInt(query.Get("age_max"), "age_max")
		if err != nil {
			writeError(w, err)
			return
		}

		var activities []string
		for _, v := range query["activities"] {
			for _, a := range strings.Split(v, ",") {
				if a = strings.TrimSpace(a); a != "" {
					activities = append(activities, a)
				}
			}
		}

		candidates, err := svc.Recommend(r.Context(), account, ageMin, ageMax, activities)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]models.CandidateResponse, 0, len(candidates))
		for i := range candidates {
			resp = append(resp, models.NewCandidateResponse(&candidates[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func optionalInt(raw, field string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.NewError(field, "must be an integer")
	}
	return &v, nil
}
