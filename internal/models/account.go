package models

import (
	"time"
)

// Account represents a row of the account table plus its pronoun set.
type Account struct {
	ID           int64  `db:"id"`            // Primary key
	Phone        string `db:"phone"`         // Unique external identifier, never changes
	PasswordHash string `db:"password_hash"` // bcrypt digest

	Name      *string `db:"name"` // Derived "first last"
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
	Username  *string `db:"username"`
	Birthday  *Date   `db:"birthday"`
	Bio       *string `db:"bio"`

	Gender             *Gender             `db:"gender"`
	RelationshipStatus *RelationshipStatus `db:"relationship_status"`
	Sexuality          *Sexuality          `db:"sexuality"`
	Ethnicity          *Ethnicity          `db:"ethnicity"`
	JobTitle           *string             `db:"job_title"`

	GenderHidden             bool `db:"gender_hidden"`
	RelationshipStatusHidden bool `db:"relationship_status_hidden"`
	SexualityHidden          bool `db:"sexuality_hidden"`
	EthnicityHidden          bool `db:"ethnicity_hidden"`
	JobTitleHidden           bool `db:"job_title_hidden"`
	PronounsHidden           bool `db:"pronouns_hidden"`

	AgeMin int `db:"age_min"`
	AgeMax int `db:"age_max"`

	AutoDetectLocation bool     `db:"auto_detect_location"`
	Lat                *float64 `db:"lat"`
	Lng                *float64 `db:"lng"`
	City               *string  `db:"city"`
	State              *string  `db:"state"`
	Radius             int      `db:"radius"`

	ScheduleNotes *string `db:"schedule_notes"`
	ScheduleMon   *string `db:"schedule_mon"`
	ScheduleTues  *string `db:"schedule_tues"`
	ScheduleWed   *string `db:"schedule_wed"`
	ScheduleThurs *string `db:"schedule_thurs"`
	ScheduleFri   *string `db:"schedule_fri"`
	ScheduleSat   *string `db:"schedule_sat"`
	ScheduleSun   *string `db:"schedule_sun"`

	Created time.Time `db:"created"`
	Updated time.Time `db:"updated"`

	Pronouns []PronounName `db:"-"`
}

// Location returns the [lng, lat] pair, or nil when either coordinate is unset.
func (a *Account) Location() []float64 {
	if a.Lat == nil || a.Lng == nil {
		return nil
	}
	return []float64{*a.Lng, *a.Lat}
}

// HasLocation reports whether both coordinates are stored.
func (a *Account) HasLocation() bool {
	return a.Lat != nil && a.Lng != nil
}

// ProfileComplete reports whether the fields required to show the profile
// to other users are filled in.
func (a *Account) ProfileComplete() bool {
	return a.Birthday != nil && a.Phone != "" &&
		a.Username != nil && *a.Username != "" &&
		a.Name != nil && *a.Name != ""
}

// Place is the result of reverse geocoding a coordinate.
type Place struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Account defaults applied at registration.
const (
	DefaultAgeMin = 18
	DefaultAgeMax = 100
	DefaultRadius = 30
)
