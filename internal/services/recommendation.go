package services

//go:generate mockgen -source=recommendation.go -destination=recommendation_mock.go -package=services

import (
	"context"
	"time"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/validation"
)

const recommendationLimit = 50

// CandidateReader lists accounts by birthday range.
type CandidateReader interface {
	ListByBirthdayRange(ctx context.Context, excludeID int64, bornAfter, bornBefore time.Time, limit int) ([]models.Account, error)
}

// RecommendationService returns candidate profiles for an account. Matching
// is limited to the age range.
type RecommendationService struct {
	reader CandidateReader
	now    func() time.Time
}

func NewRecommendationService(reader CandidateReader) *RecommendationService {
	return &RecommendationService{reader: reader, now: time.Now}
}

// Recommend lists accounts whose age lies within [ageMin, ageMax]. Absent
// bounds fall back to the account's stored preferences. Activities are
// accepted for API compatibility and not used for matching.
func (s *RecommendationService) Recommend(ctx context.Context, account *models.Account, ageMin, ageMax *int, activities []string) ([]models.Account, error) {
	lo, hi := account.AgeMin, account.AgeMax
	if ageMin != nil {
		lo = *ageMin
	}
	if ageMax != nil {
		hi = *ageMax
	}
	if lo < 0 || hi < 0 {
		return nil, validation.NewError("age_min", "must not be negative")
	}
	if lo > hi {
		return nil, validation.NewError("age_min", "must be less than or equal to age_max")
	}

	bornAfter, bornBefore := birthdayRange(s.now(), lo, hi)

	candidates, err := s.reader.ListByBirthdayRange(ctx, account.ID, bornAfter, bornBefore, recommendationLimit)
	if err != nil {
		logger.Log.Errorw("failed to list candidates", "account_id", account.ID, "error", err)
		return nil, err
	}

	logger.Log.Infow("candidates listed", "account_id", account.ID, "count", len(candidates), "activities", len(activities))
	return candidates, nil
}

// birthdayRange returns the inclusive birthday bounds of people aged
// between lo and hi years on the date of now.
func birthdayRange(now time.Time, lo, hi int) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	bornBefore := today.AddDate(-lo, 0, 0)
	bornAfter := today.AddDate(-(hi + 1), 0, 1)
	return bornAfter, bornBefore
}
