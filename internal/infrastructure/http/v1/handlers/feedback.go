package handlers

import (
	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/feedback"
	"insural/internal/infrastructure/http/v1/dto"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	*CrudHandler[*feedback.Feedback, dto.CreateFeedbackRequest, dto.UpdateFeedbackRequest]
	service *feedback.Service
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(base *BaseHandler, service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[*feedback.Feedback, dto.CreateFeedbackRequest, dto.UpdateFeedbackRequest]{
			Service:    service,
			EntityName: "feedback",
			MapCreateDTO: func(req dto.CreateFeedbackRequest) *feedback.Feedback {
				return req.ToEntity()
			},
			MapUpdateDTO: func(req dto.UpdateFeedbackRequest, existing *feedback.Feedback) *feedback.Feedback {
				req.ApplyTo(existing)
				return existing
			},
			MapToDTO: func(fb *feedback.Feedback) any {
				return dto.FromFeedback(fb)
			},
		}),
		service: service,
	}
}

// MarkPurchased handles PUT /feedbacks/:id/purchase - flag the entry as
// having led to a purchase.
func (h *FeedbackHandler) MarkPurchased(c *gin.Context) {
	ctx := c.Request.Context()

	feedbackID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	updated, err := h.service.MarkPurchased(ctx, feedbackID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromFeedback(updated))
}
