package request

import (
	"strings"

	"carhive/internal/domain/user"
	"carhive/internal/pkg/password"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone,omitempty"`
}

// ToDomain builds a customer user with the password hashed. Roles are never
// caller supplied; admins are provisioned out of band.
func (r *RegisterRequest) ToDomain() (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(r.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}

	var phone *string
	if r.Phone != nil {
		trimmed := strings.TrimSpace(*r.Phone)
		if trimmed != "" {
			phone = &trimmed
		}
	}

	return user.NewUser(r.Username, email, hash, phone, user.RoleCustomer)
}
