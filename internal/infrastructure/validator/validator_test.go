package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		password string
		ok       bool
	}{
		{"Passw0rd!", true},
		{"short1!", false},
		{"password1!", false},
		{"PASSWORD1!", false},
		{"Password!!", false},
		{"Password11", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := v.ValidatePasswordStrength(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("alice@campus.edu"))
	assert.Error(t, v.ValidateEmail("alice"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestRegisterCustomValidators(t *testing.T) {
	assert.NoError(t, RegisterCustomValidators())
}
