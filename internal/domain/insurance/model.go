// Package insurance provides the insurance policy catalog.
package insurance

import (
	"context"

	"github.com/shopspring/decimal"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
)

// Insurance represents a purchasable insurance policy.
type Insurance struct {
	entity.Base

	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`

	// ImageURL points at the policy image in object storage.
	ImageURL string `db:"image_url" json:"imageUrl"`
}

// New creates an Insurance with required fields.
func New(name string, price decimal.Decimal, description string) *Insurance {
	return &Insurance{
		Base:        entity.NewBase(),
		Name:        name,
		Price:       price,
		Description: description,
	}
}

// Validate implements entity.Validatable.
func (i *Insurance) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if i.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", i.Price.String())
	}
	return nil
}
