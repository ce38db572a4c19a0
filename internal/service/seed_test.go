package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"authdemo/internal/model"
)

func TestValidateSeedUser(t *testing.T) {
	assert.NoError(t, ValidateSeedUser(model.User{Name: "Demo User", Email: "user@enquero.com", Password: "Enquero@123"}))
	assert.Error(t, ValidateSeedUser(model.User{Name: " ", Email: "user@enquero.com", Password: "Enquero@123"}))
	assert.Error(t, ValidateSeedUser(model.User{Name: "Demo", Email: "user@enquero", Password: "Enquero@123"}))
	assert.Error(t, ValidateSeedUser(model.User{Name: "Demo", Email: "user@enquero.com", Password: "enquero"}))
}
