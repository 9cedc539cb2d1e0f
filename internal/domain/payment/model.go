// Package payment provides payout requests raised against the company.
package payment

import (
	"context"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
)

// Well-known payment statuses. The column is free-form; these are the
// values the UI produces.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// Payment represents a payout request. Identity fields (name, email,
// phone, bank account) are immutable after creation; only status and
// reason change afterwards.
type Payment struct {
	entity.Base

	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	BankAccount string `db:"bank_account" json:"bankAccount"`
	Status      string `db:"status" json:"status"`
	Reason      string `db:"reason" json:"reason"`
}

// New creates a Payment with required fields.
func New(name, email, phone, bankAccount string) *Payment {
	return &Payment{
		Base:        entity.NewBase(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		BankAccount: bankAccount,
	}
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Email != "" && !entity.IsValidEmail(p.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}
	if p.Phone != "" && (len(p.Phone) != 10 || !entity.IsDigits(p.Phone)) {
		return apperror.NewValidation("phone must contain exactly 10 digits").
			WithDetail("field", "phone")
	}
	if p.BankAccount != "" {
		if n := len(p.BankAccount); n < 9 || n > 14 || !entity.IsDigits(p.BankAccount) {
			return apperror.NewValidation("bank account must contain 9 to 14 digits").
				WithDetail("field", "bankAccount")
		}
	}
	return nil
}
