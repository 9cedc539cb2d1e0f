package entity

import (
	"context"
	"regexp"
	"time"

	"insural/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Persistable is the constraint for entities handled by the generic
// repository and service layers.
type Persistable interface {
	Validatable
	EnsureID()
	Touch()
}

// Base contains common fields for all stored entities.
type Base struct {
	// ID is the primary key (UUIDv7), assigned once at persistence time
	// and never reassigned.
	ID id.ID `db:"id" json:"id"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBase creates a Base with timestamps set. The ID stays nil until the
// service layer persists the entity.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EnsureID assigns an ID if none has been assigned yet.
func (b *Base) EnsureID() {
	if id.IsNil(b.ID) {
		b.ID = id.New()
	}
}

// Touch updates the UpdatedAt timestamp.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s has a plausible email shape.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// IsDigits reports whether s consists solely of ASCII digits.
func IsDigits(s string) bool {
	return digitsRe.MatchString(s)
}
