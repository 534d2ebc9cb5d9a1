package models

import "strconv"

// AccountUpdate is a partial profile change set as sent by the client.
// A nil field (or nil slice) means "not present"; it is never mutated by the
// update engine.
// swagger:model AccountUpdate
type AccountUpdate struct {
	Password  *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
	Birthday  *Date   `json:"birthday,omitempty"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Username  *string `json:"username,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`

	Gender             *Gender             `json:"gender,omitempty" validate:"omitempty,gender"`
	RelationshipStatus *RelationshipStatus `json:"relationship_status,omitempty" validate:"omitempty,relationship_status"`
	Sexuality          *Sexuality          `json:"sexuality,omitempty" validate:"omitempty,sexuality"`
	Ethnicity          *Ethnicity          `json:"ethnicity,omitempty" validate:"omitempty,ethnicity"`
	JobTitle           *string             `json:"job_title,omitempty" validate:"omitempty,max=100"`

	GenderHidden             *bool `json:"gender_hidden,omitempty"`
	RelationshipStatusHidden *bool `json:"relationship_status_hidden,omitempty"`
	SexualityHidden          *bool `json:"sexuality_hidden,omitempty"`
	EthnicityHidden          *bool `json:"ethnicity_hidden,omitempty"`
	JobTitleHidden           *bool `json:"job_title_hidden,omitempty"`
	PronounsHidden           *bool `json:"pronouns_hidden,omitempty"`

	AgeMin *int `json:"age_min,omitempty" validate:"omitempty,gte=18,lte=100"`
	AgeMax *int `json:"age_max,omitempty" validate:"omitempty,gte=18,lte=100"`

	AutoDetectLocation *bool     `json:"auto_detect_location,omitempty"`
	Location           []float64 `json:"location,omitempty" validate:"omitempty,len=2"`       // [lng, lat]
	Radius             *int      `json:"radius,omitempty" validate:"omitempty,gte=1,lte=500"`

	ScheduleNotes *string `json:"schedule_notes,omitempty" validate:"omitempty,max=2000"`
	ScheduleMon   *string `json:"schedule_mon,omitempty" validate:"omitempty,max=200"`
	ScheduleTues  *string `json:"schedule_tues,omitempty" validate:"omitempty,max=200"`
	ScheduleWed   *string `json:"schedule_wed,omitempty" validate:"omitempty,max=200"`
	ScheduleThurs *string `json:"schedule_thurs,omitempty" validate:"omitempty,max=200"`
	ScheduleFri   *string `json:"schedule_fri,omitempty" validate:"omitempty,max=200"`
	ScheduleSat   *string `json:"schedule_sat,omitempty" validate:"omitempty,max=200"`
	ScheduleSun   *string `json:"schedule_sun,omitempty" validate:"omitempty,max=200"`

	Pronouns []PronounName `json:"pronouns,omitempty" validate:"omitempty,min=1,max=4,dive,pronoun"`
}

// PronounResponse is a single pronoun entry in a profile response.
// swagger:model PronounResponse
type PronounResponse struct {
	// example: they
	Name PronounName `json:"name"`
}

// AccountResponse is the profile representation returned to clients.
// swagger:model AccountResponse
type AccountResponse struct {
	ID        string  `json:"id"`
	Phone     string  `json:"phone"`
	Birthday  *Date   `json:"birthday"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`

	Gender             *Gender             `json:"gender"`
	RelationshipStatus *RelationshipStatus `json:"relationship_status"`
	Sexuality          *Sexuality          `json:"sexuality"`
	Ethnicity          *Ethnicity          `json:"ethnicity"`
	JobTitle           *string             `json:"job_title"`
	Pronouns           []PronounResponse   `json:"pronouns"`

	GenderHidden             bool `json:"gender_hidden"`
	RelationshipStatusHidden bool `json:"relationship_status_hidden"`
	SexualityHidden          bool `json:"sexuality_hidden"`
	EthnicityHidden          bool `json:"ethnicity_hidden"`
	JobTitleHidden           bool `json:"job_title_hidden"`
	PronounsHidden           bool `json:"pronouns_hidden"`

	AgeMin int `json:"age_min"`
	AgeMax int `json:"age_max"`

	AutoDetectLocation bool      `json:"auto_detect_location"`
	Location           []float64 `json:"location"`
	Lat                *float64  `json:"lat"`
	Lng                *float64  `json:"lng"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Radius             int       `json:"radius"`

	ScheduleNotes *string `json:"schedule_notes"`
	ScheduleMon   *string `json:"schedule_mon"`
	ScheduleTues  *string `json:"schedule_tues"`
	ScheduleWed   *string `json:"schedule_wed"`
	ScheduleThurs *string `json:"schedule_thurs"`
	ScheduleFri   *string `json:"schedule_fri"`
	ScheduleSat   *string `json:"schedule_sat"`
	ScheduleSun   *string `json:"schedule_sun"`

	ProfileComplete bool `json:"profile_complete"`
}

// NewAccountResponse builds the client view of an account. The location pair
// is always derived from lat/lng.
func NewAccountResponse(a *Account) AccountResponse {
	pronouns := make([]PronounResponse, 0, len(a.Pronouns))
	for _, p := range a.Pronouns {
		pronouns = append(pronouns, PronounResponse{Name: p})
	}

	return AccountResponse{
		ID:        formatID(a.ID),
		Phone:     a.Phone,
		Birthday:  a.Birthday,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Name:      a.Name,
		Username:  a.Username,
		Bio:       a.Bio,

		Gender:             a.Gender,
		RelationshipStatus: a.RelationshipStatus,
		Sexuality:          a.Sexuality,
		Ethnicity:          a.Ethnicity,
		JobTitle:           a.JobTitle,
		Pronouns:           pronouns,

		GenderHidden:             a.GenderHidden,
		RelationshipStatusHidden: a.RelationshipStatusHidden,
		SexualityHidden:          a.SexualityHidden,
		EthnicityHidden:          a.EthnicityHidden,
		JobTitleHidden:           a.JobTitleHidden,
		PronounsHidden:           a.PronounsHidden,

		AgeMin: a.AgeMin,
		AgeMax: a.AgeMax,

		AutoDetectLocation: a.AutoDetectLocation,
		Location:           a.Location(),
		Lat:                a.Lat,
		Lng:                a.Lng,
		City:               a.City,
		State:              a.State,
		Radius:             a.Radius,

		ScheduleNotes: a.ScheduleNotes,
		ScheduleMon:   a.ScheduleMon,
		ScheduleTues:  a.ScheduleTues,
		ScheduleWed:   a.ScheduleWed,
		ScheduleThurs: a.ScheduleThurs,
		ScheduleFri:   a.ScheduleFri,
		ScheduleSat:   a.ScheduleSat,
		ScheduleSun:   a.ScheduleSun,

		ProfileComplete: a.ProfileComplete(),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// CandidateResponse is the public view of another account. Attributes the
// owner marked hidden are omitted.
// swagger:model CandidateResponse
type CandidateResponse struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Birthday *Date   `json:"birthday"`
	Bio      *string `json:"bio"`

	Gender             *Gender             `json:"gender,omitempty"`
	RelationshipStatus *RelationshipStatus `json:"relationship_status,omitempty"`
	Sexuality          *Sexuality          `json:"sexuality,omitempty"`
	Ethnicity          *Ethnicity          `json:"ethnicity,omitempty"`
	JobTitle           *string             `json:"job_title,omitempty"`
	Pronouns           []PronounResponse   `json:"pronouns,omitempty"`

	City  *string `json:"city"`
	State *string `json:"state"`
}

// NewCandidateResponse builds the public view of a.
func NewCandidateResponse(a *Account) CandidateResponse {
	c := CandidateResponse{
		ID:       formatID(a.ID),
		Name:     a.Name,
		Username: a.Username,
		Birthday: a.Birthday,
		Bio:      a.Bio,
		City:     a.City,
		State:    a.State,
	}
	if !a.GenderHidden {
		c.Gender = a.Gender
	}
	if !a.RelationshipStatusHidden {
		c.RelationshipStatus = a.RelationshipStatus
	}
	if !a.SexualityHidden {
		c.Sexuality = a.Sexuality
	}
	if !a.EthnicityHidden {
		c.Ethnicity = a.Ethnicity
	}
	if !a.JobTitleHidden {
		c.JobTitle = a.JobTitle
	}
	if !a.PronounsHidden {
		for _, p := range a.Pronouns {
			c.Pronouns = append(c.Pronouns, PronounResponse{Name: p})
		}
	}
	return c
}
