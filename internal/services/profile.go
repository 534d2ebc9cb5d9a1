package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dashmachine/dashmachine-api/internal/geo"
	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/repositories"
	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// RelocationThresholdKm is how far an account must move before its city and
// state are resolved again.
const RelocationThresholdKm = 1.5

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfileReader loads accounts during an update.
type ProfileReader interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Account, error)
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)
}

// ProfileWriter persists profile changes.
type ProfileWriter interface {
	UpdateFields(ctx context.Context, id int64, set []models.Assignment) error
	ReplacePronouns(ctx context.Context, accountID int64, pronouns []models.PronounName) error
}

// Geolocator resolves coordinates to a place.
type Geolocator interface {
	Resolve(ctx context.Context, lat, lng float64) (models.Place, error)
}

// ProfileService applies partial profile updates.
type ProfileService struct {
	tx         Transactor
	reader     ProfileReader
	writer     ProfileWriter
	hasher     PasswordHasher
	geolocator Geolocator
}

func NewProfileService(
	tx Transactor,
	reader ProfileReader,
	writer ProfileWriter,
	hasher PasswordHasher,
	geolocator Geolocator,
) *ProfileService {
	return &ProfileService{
		tx:         tx,
		reader:     reader,
		writer:     writer,
		hasher:     hasher,
		geolocator: geolocator,
	}
}

// Update applies req to account and returns the stored result. Password
// hashing and geolocation run before the transaction; pronoun replacement and
// the field update commit together.
func (s *ProfileService) Update(ctx context.Context, account *models.Account, req models.AccountUpdate) (*models.Account, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var (
		lat, lng *float64
		place    *models.Place
	)
	if req.Location != nil {
		lo, la := req.Location[0], req.Location[1]
		if !geo.ValidCoordinates(la, lo) {
			return nil, validation.NewError("location", "must be [lng, lat] within valid ranges")
		}
		lat, lng = &la, &lo

		if needsGeocoding(account, la, lo) {
			p, err := s.geolocator.Resolve(ctx, la, lo)
			if err != nil {
				return nil, err
			}
			place = &p
		}
	}

	var passwordHash *string
	if req.Password != nil {
		digest, err := s.hasher.Hash(*req.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "account_id", account.ID, "error", err)
			return nil, err
		}
		passwordHash = &digest
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.reader.GetByIDForUpdate(ctx, account.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrAccountNotFound
		}

		changes := newProfileChanges(current, req, passwordHash, lat, lng, place)

		if changes.replacePronouns {
			if err := s.writer.ReplacePronouns(ctx, current.ID, changes.Pronouns()); err != nil {
				return err
			}
		}
		return s.writer.UpdateFields(ctx, current.ID, changes.Assignments())
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, validation.NewError("username", "already taken")
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "account_id", account.ID, "error", err)
		return nil, err
	}

	updated, err := s.reader.GetByPhone(ctx, account.Phone)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrAccountNotFound
	}

	logger.Log.Infow("profile updated", "account_id", account.ID, "relocated", place != nil)
	return updated, nil
}

// needsGeocoding reports whether a move to (lat, lng) requires resolving the
// place again.
func needsGeocoding(account *models.Account, lat, lng float64) bool {
	if !account.HasLocation() {
		return true
	}
	return geo.Distance(*account.Lat, *account.Lng, lat, lng) > RelocationThresholdKm
}

// profileChanges is the normalized form of an update. It is built once and
// only read afterwards.
type profileChanges struct {
	assignments     []models.Assignment
	pronouns        []models.PronounName
	replacePronouns bool
}

func newProfileChanges(
	current *models.Account,
	req models.AccountUpdate,
	passwordHash *string,
	lat, lng *float64,
	place *models.Place,
) profileChanges {
	var c profileChanges
	set := func(column string, value any) {
		c.assignments = append(c.assignments, models.Assignment{Column: column, Value: value})
	}

	if passwordHash != nil {
		set("password_hash", *passwordHash)
	}

	caser := cases.Title(language.English)
	if req.FirstName != nil {
		first := caser.String(*req.FirstName)
		set("first_name", first)
		if first != "" {
			set("name", displayName(caser, first, req.LastName, current.LastName))
		}
	}
	if req.LastName != nil {
		set("last_name", caser.String(*req.LastName))
	}

	if len(req.Pronouns) > 0 {
		c.replacePronouns = true
		c.pronouns = append([]models.PronounName(nil), req.Pronouns...)
	}

	if lat != nil && lng != nil {
		set("lat", *lat)
		set("lng", *lng)
		if place != nil {
			set("city", nullable(place.City))
			set("state", nullable(place.State))
		}
	}

	if req.Birthday != nil {
		set("birthday", req.Birthday.Time)
	}
	setString := func(column string, v *string) {
		if v != nil {
			set(column, *v)
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			set(column, *v)
		}
	}
	setInt := func(column string, v *int) {
		if v != nil {
			set(column, *v)
		}
	}

	setString("username", req.Username)
	setString("bio", req.Bio)
	if req.Gender != nil {
		set("gender", string(*req.Gender))
	}
	if req.RelationshipStatus != nil {
		set("relationship_status", string(*req.RelationshipStatus))
	}
	if req.Sexuality != nil {
		set("sexuality", string(*req.Sexuality))
	}
	if req.Ethnicity != nil {
		set("ethnicity", string(*req.Ethnicity))
	}
	setString("job_title", req.JobTitle)

	setBool("gender_hidden", req.GenderHidden)
	setBool("relationship_status_hidden", req.RelationshipStatusHidden)
	setBool("sexuality_hidden", req.SexualityHidden)
	setBool("ethnicity_hidden", req.EthnicityHidden)
	setBool("job_title_hidden", req.JobTitleHidden)
	setBool("pronouns_hidden", req.PronounsHidden)

	setInt("age_min", req.AgeMin)
	setInt("age_max", req.AgeMax)
	setBool("auto_detect_location", req.AutoDetectLocation)
	setInt("radius", req.Radius)

	setString("schedule_notes", req.ScheduleNotes)
	setString("schedule_mon", req.ScheduleMon)
	setString("schedule_tues", req.ScheduleTues)
	setString("schedule_wed", req.ScheduleWed)
	setString("schedule_thurs", req.ScheduleThurs)
	setString("schedule_fri", req.ScheduleFri)
	setString("schedule_sat", req.ScheduleSat)
	setString("schedule_sun", req.ScheduleSun)

	return c
}

// Assignments returns a copy of the column assignments.
func (c profileChanges) Assignments() []models.Assignment {
	return append([]models.Assignment(nil), c.assignments...)
}

// Pronouns returns a copy of the replacement pronoun list.
func (c profileChanges) Pronouns() []models.PronounName {
	return append([]models.PronounName{}, c.pronouns...)
}

// displayName joins first with the incoming last name, or the stored one
// when the update carries none.
func displayName(caser cases.Caser, first string, incomingLast, storedLast *string) string {
	last := storedLast
	if incomingLast != nil {
		last = incomingLast
	}
	if last == nil || strings.TrimSpace(*last) == "" {
		return first
	}
	return first + " " + caser.String(*last)
}

// nullable stores an empty resolved name as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
