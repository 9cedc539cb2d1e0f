// Package user provides accounts and authentication domain logic.
package user

import (
	"context"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
	"insural/internal/core/id"
)

// User represents a registered account. The password is stored hashed and
// never leaves the service.
type User struct {
	entity.Base

	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`

	PasswordHash string `db:"password_hash" json:"-"`
}

// New creates a User with required fields. The hash is set by the service.
func New(name, email, phone string) *User {
	return &User{
		Base:  entity.NewBase(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").
			WithDetail("field", "email")
	}
	if !entity.IsValidEmail(u.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}
	return nil
}

// Profile is the public slice of a user handed to the token issuer and
// returned by the API. It never carries the password hash.
type Profile struct {
	ID    id.ID  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Profile returns the public profile of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
