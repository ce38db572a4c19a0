package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"authdemo/internal/model"
)

type seedRules struct {
	Name     string `validate:"required"`
	Email    string `validate:"authemail"`
	Password string `validate:"strongpassword"`
}

// ValidateSeedUser checks that the configured demo account could also have
// been created through signup.
func ValidateSeedUser(u model.User) error {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		return err
	}
	rules := seedRules{
		Name:     strings.TrimSpace(u.Name),
		Email:    u.Email,
		Password: u.Password,
	}
	if err := v.Struct(rules); err != nil {
		return fmt.Errorf("invalid seed user: %w", err)
	}
	return nil
}
