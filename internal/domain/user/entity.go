package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User entity. Registration and login only; bookings reference users by id.
type User struct {
	id           uuid.UUID
	username     string
	email        Email
	phone        *string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username string, email Email, passwordHash string, phone *string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	username string,
	email Email,
	phone *string,
	passwordHash string,
	role Role,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) Phone() *string       { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsAdmin() bool        { return u.role.IsAdmin() }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
