package dto

import (
	"insural/internal/domain/feedback"
)

// --- Request DTOs ---

// CreateFeedbackRequest is the request body for leaving feedback.
type CreateFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,len=10,numeric"`
	Content string `json:"content" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateFeedbackRequest) ToEntity() *feedback.Feedback {
	return feedback.New(r.Name, r.Email, r.Phone, r.Content)
}

// UpdateFeedbackRequest is the request body for updating a feedback entry.
type UpdateFeedbackRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,len=10,numeric"`
	Content    *string `json:"content"`
	IsPurchase *bool   `json:"isPurchase"`
}

// ApplyTo applies update DTO to existing entity. Nil fields keep stored
// values.
func (r *UpdateFeedbackRequest) ApplyTo(fb *feedback.Feedback) {
	if r.Name != nil {
		fb.Name = *r.Name
	}
	if r.Email != nil {
		fb.Email = *r.Email
	}
	if r.Phone != nil {
		fb.Phone = *r.Phone
	}
	if r.Content != nil {
		fb.Content = *r.Content
	}
	if r.IsPurchase != nil {
		fb.IsPurchase = *r.IsPurchase
	}
}

// --- Response DTOs ---

// FeedbackResponse is the response body for a feedback entry.
type FeedbackResponse struct {
	BaseResponse
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Content    string `json:"content"`
	IsPurchase bool   `json:"isPurchase"`
}

// FromFeedback creates response DTO from domain entity.
func FromFeedback(fb *feedback.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		BaseResponse: FromBase(fb.Base),
		Name:         fb.Name,
		Email:        fb.Email,
		Phone:        fb.Phone,
		Content:      fb.Content,
		IsPurchase:   fb.IsPurchase,
	}
}
