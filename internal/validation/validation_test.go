package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashmachine/dashmachine-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestStruct_AccountUpdate(t *testing.T) {
	tests := []struct {
		name       string
		update     models.AccountUpdate
		wantFields []string
	}{
		{
			name:   "empty update is valid",
			update: models.AccountUpdate{},
		},
		{
			name: "valid enums and pronouns",
			update: models.AccountUpdate{
				Gender:    ptr(models.GenderNonBinary),
				Sexuality: ptr(models.SexualityQueer),
				Pronouns:  []models.PronounName{models.PronounThey, models.PronounThem},
				Location:  []float64{-73.99, 40.73},
			},
		},
		{
			name:       "explicit empty pronoun list",
			update:     models.AccountUpdate{Pronouns: []models.PronounName{}},
			wantFields: []string{"pronouns"},
		},
		{
			name:       "unknown gender",
			update:     models.AccountUpdate{Gender: ptr(models.Gender("robot"))},
			wantFields: []string{"gender"},
		},
		{
			name:       "unknown ethnicity",
			update:     models.AccountUpdate{Ethnicity: ptr(models.Ethnicity("Martian"))},
			wantFields: []string{"ethnicity"},
		},
		{
			name: "too many pronouns",
			update: models.AccountUpdate{Pronouns: []models.PronounName{
				models.PronounShe, models.PronounHer, models.PronounHers, models.PronounThey, models.PronounThem,
			}},
			wantFields: []string{"pronouns"},
		},
		{
			name:       "unknown pronoun",
			update:     models.AccountUpdate{Pronouns: []models.PronounName{models.PronounHe, "xe"}},
			wantFields: []string{"pronouns[1]"},
		},
		{
			name:       "location must be a pair",
			update:     models.AccountUpdate{Location: []float64{1, 2, 3}},
			wantFields: []string{"location"},
		},
		{
			name:       "age below minimum",
			update:     models.AccountUpdate{AgeMin: ptr(17)},
			wantFields: []string{"age_min"},
		},
		{
			name:       "password over bcrypt limit",
			update:     models.AccountUpdate{Password: ptr(string(make([]byte, 73)))},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.update)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "expected *Error, got %v", err)
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "bad", "a": "worse"}}
	assert.Equal(t, "validation failed: a: worse; b: bad", err.Error())

	single := NewError("location", "latitude out of range")
	assert.Equal(t, map[string]string{"location": "latitude out of range"}, single.Fields)
}
