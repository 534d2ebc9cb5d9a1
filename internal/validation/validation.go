package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/dashmachine/dashmachine-api/internal/models"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Error carries field-level validation failures keyed by JSON field name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for k, msg := range e.Fields {
		parts = append(parts, k+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError returns a validation error for a single field.
func NewError(field, msg string) *Error {
	return &Error{Fields: map[string]string{field: msg}}
}

func instance() *gpvalidator.Validate {
	once.Do(func() {
		v = gpvalidator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "gender", func(fl gpvalidator.FieldLevel) bool {
			return models.Gender(fl.Field().String()).Valid()
		})
		mustRegister(v, "relationship_status", func(fl gpvalidator.FieldLevel) bool {
			return models.RelationshipStatus(fl.Field().String()).Valid()
		})
		mustRegister(v, "sexuality", func(fl gpvalidator.FieldLevel) bool {
			return models.Sexuality(fl.Field().String()).Valid()
		})
		mustRegister(v, "ethnicity", func(fl gpvalidator.FieldLevel) bool {
			return models.Ethnicity(fl.Field().String()).Valid()
		})
		mustRegister(v, "pronoun", func(fl gpvalidator.FieldLevel) bool {
			return models.PronounName(fl.Field().String()).Valid()
		})
	})
	return v
}

func mustRegister(v *gpvalidator.Validate, tag string, fn gpvalidator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct validates s and converts validator failures into *Error.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = message(fe)
	}
	return &Error{Fields: fields}
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "AccountUpdate.pronouns[2]" becomes "pronouns[2]".
func fieldPath(fe gpvalidator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "e164":
		return "must be an E.164 phone number"
	case "len":
		return "must have exactly " + fe.Param() + " items"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "numeric":
		return "must contain only digits"
	case "gender", "relationship_status", "sexuality", "ethnicity", "pronoun":
		return fmt.Sprintf("%q is not a permitted value", fe.Value())
	}
	return "failed " + fe.Tag() + " validation"
}
