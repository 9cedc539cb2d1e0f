package dto

import (
	"insural/internal/domain/payment"
)

// --- Request DTOs ---

// CreatePaymentRequest is the request body for raising a payout request.
// The binding tags mirror the domain invariants so malformed input is
// reported per field before reaching the service.
type CreatePaymentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,len=10,numeric"`
	BankAccount string `json:"bankAccount" binding:"required,numeric,min=9,max=14"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePaymentRequest) ToEntity() *payment.Payment {
	p := payment.New(r.Name, r.Email, r.Phone, r.BankAccount)
	p.Status = r.Status
	if p.Status == "" {
		p.Status = payment.StatusPending
	}
	p.Reason = r.Reason
	return p
}

// UpdatePaymentRequest is the request body for updating a payment. Only
// status and reason are mutable; identity fields are fixed at creation.
type UpdatePaymentRequest struct {
	Status *string `json:"status"`
	Reason *string `json:"reason"`
}

// ToParams converts the DTO into service update params.
func (r *UpdatePaymentRequest) ToParams() payment.UpdateParams {
	return payment.UpdateParams{
		Status: r.Status,
		Reason: r.Reason,
	}
}

// --- Response DTOs ---

// PaymentResponse is the response body for a payment.
type PaymentResponse struct {
	BaseResponse
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bankAccount"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// FromPayment creates response DTO from domain entity.
func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		BaseResponse: FromBase(p.Base),
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		BankAccount:  p.BankAccount,
		Status:       p.Status,
		Reason:       p.Reason,
	}
}
