package dto

import (
	"mime/multipart"

	"github.com/shopspring/decimal"

	"insural/internal/domain/insurance"
)

// --- Request DTOs ---

// CreateInsuranceRequest is the request body for creating a policy.
type CreateInsuranceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInsuranceRequest) ToEntity() *insurance.Insurance {
	ins := insurance.New(r.Name, r.Price, r.Description)
	ins.ImageURL = r.ImageURL
	return ins
}

// UpdateInsuranceForm is the multipart form for updating a policy. The
// image travels as a file part alongside scalar fields.
type UpdateInsuranceForm struct {
	Name        *string               `form:"name"`
	Price       *decimal.Decimal      `form:"price"`
	Description *string               `form:"description"`
	Image       *multipart.FileHeader `form:"image"`
}

// ToParams converts the form into service update params. The image file,
// if present, is opened by the handler and attached separately.
func (f *UpdateInsuranceForm) ToParams() insurance.UpdateParams {
	return insurance.UpdateParams{
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
	}
}

// --- Response DTOs ---

// InsuranceResponse is the response body for a policy.
type InsuranceResponse struct {
	BaseResponse
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// FromInsurance creates response DTO from domain entity.
func FromInsurance(ins *insurance.Insurance) *InsuranceResponse {
	return &InsuranceResponse{
		BaseResponse: FromBase(ins.Base),
		Name:         ins.Name,
		Price:        ins.Price,
		Description:  ins.Description,
		ImageURL:     ins.ImageURL,
	}
}
