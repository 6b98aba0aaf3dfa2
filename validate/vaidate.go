// Package validate contains custom validation functions
package validate

import (
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 -]*$`)

// CityTiers contains the accepted city tiers
var CityTiers = []string{"Tier 1", "Tier 2"}

// New returns a validator with all the custom validations registered
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})
	v.RegisterValidation("validate_phone", Phone)
	v.RegisterValidation("validate_city_tier", CityTier)
	return v
}

// Phone is a custom validation function that is used to validate phone numbers, it only
// checks the shape of the number and not wether it is reachable
func Phone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}

	return phoneRegex.MatchString(phone)
}

// CityTier is a custom validation function that is used to validate the city tier
func CityTier(fl validator.FieldLevel) bool {
	tier := fl.Field().String()
	for _, t := range CityTiers {
		if tier == t {
			return true
		}
	}

	return false
}

// Filename reports wether the uploaded filename can be used as is on disk, names that
// carry a directory component are rejected
func Filename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}

	return filepath.Base(name) == name
}

// Messages flattens validation errors into readable messages
func Messages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Field()+": failed on "+e.Tag())
	}
	return messages
}
