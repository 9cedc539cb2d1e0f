package handlers

import (
	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/payment"
	"insural/internal/infrastructure/http/v1/dto"
)

// PaymentHandler handles payout request endpoints.
type PaymentHandler struct {
	*CrudHandler[*payment.Payment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]
	service *payment.Service
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(base *BaseHandler, service *payment.Service) *PaymentHandler {
	return &PaymentHandler{
		// The embedded generic service backs List/Get/Create/Delete; Update
		// is overridden below with the partial-update flow.
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[*payment.Payment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]{
			Service:    service.CrudService,
			EntityName: "payment",
			MapCreateDTO: func(req dto.CreatePaymentRequest) *payment.Payment {
				return req.ToEntity()
			},
			MapToDTO: func(p *payment.Payment) any {
				return dto.FromPayment(p)
			},
		}),
		service: service,
	}
}

// Update handles PUT /payments/:id - status and reason only; identity
// fields keep their stored values.
func (h *PaymentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	paymentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(ctx, paymentID, req.ToParams())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayment(updated))
}
