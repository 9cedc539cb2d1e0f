package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"insural/internal/core/id"
	"insural/internal/domain/purchase"
)

// --- Request DTOs ---

// CreatePurchaseRequest is the request body for buying a policy.
type CreatePurchaseRequest struct {
	UserID      string `json:"userId" binding:"required,uuid"`
	InsuranceID string `json:"insuranceId" binding:"required,uuid"`
	Status      string `json:"status"`
}

// ToEntity converts DTO to domain entity. Identifier parsing is guaranteed
// by the uuid binding tag.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	p := purchase.New(id.MustParse(r.UserID), id.MustParse(r.InsuranceID))
	if r.Status != "" {
		p.Status = r.Status
	}
	return p
}

// PurchaseKeyRequest carries the composite key identifying a purchase.
type PurchaseKeyRequest struct {
	InsuranceID string `form:"insuranceId" binding:"required,uuid"`
	UserID      string `form:"userId" binding:"required,uuid"`
}

// UpdatePurchaseStatusRequest is the request body for a status change
// addressed by the composite key.
type UpdatePurchaseStatusRequest struct {
	InsuranceID string `json:"insuranceId" binding:"required,uuid"`
	UserID      string `json:"userId" binding:"required,uuid"`
	Status      string `json:"status"`
}

// --- Response DTOs ---

// PurchaseResponse is the response body for a purchase.
type PurchaseResponse struct {
	BaseResponse
	UserID       string    `json:"userId"`
	InsuranceID  string    `json:"insuranceId"`
	Status       string    `json:"status"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// FromPurchase creates response DTO from domain entity.
func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		BaseResponse: FromBase(p.Base),
		UserID:       p.UserID.String(),
		InsuranceID:  p.InsuranceID.String(),
		Status:       p.Status,
		PurchaseDate: p.PurchaseDate,
	}
}

// PurchaseDetailsResponse is one row of the denormalized purchase view.
type PurchaseDetailsResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	InsuranceName  string          `json:"insuranceName"`
	InsurancePrice decimal.Decimal `json:"insurancePrice"`
	Status         string          `json:"status"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
}

// FromPurchaseDetails creates response DTO from the query projection.
func FromPurchaseDetails(d purchase.Details) PurchaseDetailsResponse {
	return PurchaseDetailsResponse{
		ID:             d.ID.String(),
		UserID:         d.UserID.String(),
		Email:          d.Email,
		Name:           d.Name,
		Phone:          d.Phone,
		InsuranceName:  d.InsuranceName,
		InsurancePrice: d.InsurancePrice,
		Status:         d.Status,
		PurchaseDate:   d.PurchaseDate,
	}
}
