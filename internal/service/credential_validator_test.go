package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.org", true},
		{"a@b.c.d", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"a@b .com", false},
		{"a b@c.com", false},
		{"a@@b.com", false},
		{"a@b@c.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		strong   bool
	}{
		{"abcdefgh", false},
		{"Abcdefg1", true},
		{"Ab1", false},
		{"ABCDEFG1", true},
		{"Abcdefgh", false},
		{"abcdefg1", false},
		{"Abc def1", true},
		{"Abcd\nefg1", false},
		{"Äbcdefg1", false},
		{"Enquero@123", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.strong, IsStrongPassword(tt.password))
		})
	}
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidations(v))

	type form struct {
		Email    string `validate:"authemail"`
		Password string `validate:"strongpassword"`
	}

	assert.NoError(t, v.Struct(form{Email: "a@b.com", Password: "Abcdefg1"}))
	assert.Error(t, v.Struct(form{Email: "a@b", Password: "Abcdefg1"}))
	assert.Error(t, v.Struct(form{Email: "a@b.com", Password: "abcdefgh"}))
}
