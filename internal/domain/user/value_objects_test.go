//go:build unit

package user_test

import (
	"testing"

	"carhive/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "alice@example.com"},
		{name: "valid with plus tag", input: "alice+rentals@example.com"},
		{name: "trims whitespace", input: "  alice@example.com  "},
		{name: "missing at sign", input: "alice.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "alice@", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())
}

func TestRole(t *testing.T) {
	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleCustomer.IsAdmin())

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	role, err := user.NewRole("customer")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCustomer, role)
}
