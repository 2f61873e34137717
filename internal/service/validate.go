package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()
	hhmm     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	// hhmm: 24h clock time, e.g. "08:30"
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmm.MatchString(fl.Field().String())
	})
	// positive_num: free-form form input that must parse as a number > 0
	_ = v.RegisterValidation("positive_num", func(fl validator.FieldLevel) bool {
		n, err := parseNumber(fl.Field().String())
		return err == nil && n > 0
	})
	return v
}
