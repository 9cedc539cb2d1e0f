// Package feedback provides customer feedback left on the storefront.
// Feedback is never hard-deleted; once a purchase is made from it, the
// linkage flag is flipped so sales can trace conversions.
package feedback

import (
	"context"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
)

// Feedback represents a customer feedback entry.
type Feedback struct {
	entity.Base

	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Content string `db:"content" json:"content"`

	// IsPurchase marks feedback that led to a purchase.
	IsPurchase bool `db:"is_purchase" json:"isPurchase"`
}

// New creates a Feedback with required fields.
func New(name, email, phone, content string) *Feedback {
	return &Feedback{
		Base:    entity.NewBase(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Content: content,
	}
}

// Validate implements entity.Validatable.
func (f *Feedback) Validate(ctx context.Context) error {
	if f.Content == "" {
		return apperror.NewValidation("content is required").
			WithDetail("field", "content")
	}
	if f.Email != "" && !entity.IsValidEmail(f.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email").
			WithDetail("value", f.Email)
	}
	return nil
}
