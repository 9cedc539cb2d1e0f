package user

import (
	"context"

	"insural/internal/domain"
)

// Repository extends the generic gateway with the email lookup used by
// authentication.
type Repository interface {
	domain.Repository[*User]

	// GetByEmail retrieves a user by email, the account lookup key.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
