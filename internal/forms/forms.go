// Package forms binds and validates the venue, artist and show forms posted
// by the browser.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

var phonePattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "us_state", func(fl validator.FieldLevel) bool {
		return IsUSState(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		_, err := models.ParseGenre(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// FieldErrors maps a form field name to the problems found with it.
type FieldErrors map[string][]string

// Add records a problem with field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Has reports whether field has any problems.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Message renders every problem in field order, suitable for a flash.
func (fe FieldErrors) Message() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, msg := range fe[field] {
			parts = append(parts, field+": "+msg)
		}
	}
	return "Errors in the following fields: " + strings.Join(parts, "; ")
}

// Error lets FieldErrors travel as an error value.
func (fe FieldErrors) Error() string {
	return fe.Message()
}

// check runs struct validation and folds the result into errs. Fields that
// already carry a binding error are skipped.
func check(form any, errs FieldErrors) {
	err := validate.Struct(form)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("form", err.Error())
		return
	}

	bound := make(map[string]bool, len(errs))
	for field := range errs {
		bound[field] = true
	}

	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if bound[field] {
			continue
		}
		errs.Add(field, describe(fe))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			return "choose at least one"
		}
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "choose at least one"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "us_state":
		return fmt.Sprintf("%q is not a US state", fe.Value())
	case "phone":
		return "must look like 123-456-7890"
	case "genre":
		return fmt.Sprintf("%q is not a known genre", fe.Value())
	case "url":
		return "must be a valid URL"
	case "gt":
		return "must be a positive number"
	default:
		return "is invalid"
	}
}

// text returns the first non-blank value among keys, trimmed.
func text(values url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

// genreTokens collects genres posted either as repeated fields or as one
// comma separated value.
func genreTokens(values url.Values) []string {
	var tokens []string
	for _, raw := range values["genres"] {
		tokens = append(tokens, models.SplitGenreList(raw)...)
	}
	return tokens
}

// checked interprets a checkbox value. Browsers send "y" or "on"; an absent
// box is false.
func checked(values url.Values, key string) bool {
	switch strings.ToLower(text(values, key)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func hasGenre(genres []string, name string) bool {
	for _, g := range genres {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}
