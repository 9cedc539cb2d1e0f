// Package purchase provides purchases of insurance policies by users.
// A purchase is keyed by the composite (insurance, user) pair for lookups
// and status updates.
package purchase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
	"insural/internal/core/id"
)

// Well-known purchase statuses.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Purchase represents a user buying an insurance policy.
type Purchase struct {
	entity.Base

	UserID       id.ID     `db:"user_id" json:"userId"`
	InsuranceID  id.ID     `db:"insurance_id" json:"insuranceId"`
	Status       string    `db:"status" json:"status"`
	PurchaseDate time.Time `db:"purchase_date" json:"purchaseDate"`
}

// New creates a Purchase with required references.
func New(userID, insuranceID id.ID) *Purchase {
	return &Purchase{
		Base:         entity.NewBase(),
		UserID:       userID,
		InsuranceID:  insuranceID,
		Status:       StatusPending,
		PurchaseDate: time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if id.IsNil(p.UserID) {
		return apperror.NewValidation("userId is required").
			WithDetail("field", "userId")
	}
	if id.IsNil(p.InsuranceID) {
		return apperror.NewValidation("insuranceId is required").
			WithDetail("field", "insuranceId")
	}
	return nil
}

// Details is the read-only projection joining purchase, user and insurance
// records. It is computed at query time, never materialized.
type Details struct {
	ID             id.ID           `db:"id" json:"id"`
	UserID         id.ID           `db:"user_id" json:"userId"`
	Email          string          `db:"email" json:"email"`
	Name           string          `db:"name" json:"name"`
	Phone          string          `db:"phone" json:"phone"`
	InsuranceName  string          `db:"insurance_name" json:"insuranceName"`
	InsurancePrice decimal.Decimal `db:"insurance_price" json:"insurancePrice"`
	Status         string          `db:"status" json:"status"`
	PurchaseDate   time.Time       `db:"purchase_date" json:"purchaseDate"`
}
