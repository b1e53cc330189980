package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"short1a", false},
		{"lettersonly", false},
		{"12345678", false},
		{"secret12", true},
		{"Пароль12", true},
		{"        ", false},
	}
	for _, tt := range tests {
		err := ValidatePasswordStrength(tt.password)
		if tt.ok {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.ErrorIs(t, err, ErrWeakPassword, "password %q", tt.password)
		}
	}
}

func TestNormalizeAuthEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeAuthEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeAuthEmail("not-an-email"))
	assert.Equal(t, "", NormalizeAuthEmail(""))
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" User@Example.com ", " secret12 ")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
	assert.Equal(t, "secret12", password)

	_, _, err = NormalizeCredentialsInput("", "secret12")
	assert.ErrorIs(t, err, ErrAuthCredentialsInvalid)

	_, _, err = NormalizeCredentialsInput("user@example.com", "   ")
	assert.ErrorIs(t, err, ErrAuthCredentialsInvalid)
}
