package dto

import (
	"insural/internal/domain/user"
)

// --- Request DTOs ---

// RegisterUserRequest is the request body for creating an account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,len=10,numeric"`
	Password string `json:"password" binding:"required,min=8"`
}

// ToEntity converts DTO to domain entity. The password travels separately
// because only its hash is stored.
func (r *RegisterUserRequest) ToEntity() *user.User {
	return user.New(r.Name, r.Email, r.Phone)
}

// LoginRequest carries login credentials as query parameters.
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// UpdateUserRequest is the request body for updating an account.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,len=10,numeric"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateUserRequest) ApplyTo(u *user.User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
}

// --- Response DTOs ---

// UserResponse is the response body for an account. It never contains the
// password hash.
type UserResponse struct {
	BaseResponse
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FromUser creates response DTO from domain entity.
func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		BaseResponse: FromBase(u.Base),
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
	}
}

// FromProfile creates response DTO from a user profile.
func FromProfile(p user.Profile) *UserResponse {
	return &UserResponse{
		BaseResponse: BaseResponse{ID: p.ID.String()},
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
	}
}
