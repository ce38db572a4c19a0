package service

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var (
	// local@domain.tld with no whitespace (Unicode spaces included) and a single @.
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsStrongPassword requires at least 8 characters, one ASCII uppercase
// letter and one digit. Line breaks are not allowed.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}
	for _, r := range password {
		if r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029' {
			return false
		}
	}
	return upperRegex.MatchString(password) && digitRegex.MatchString(password)
}

// RegisterValidations adds the authemail and strongpassword tags to v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("authemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
}
