package handlers

import (
	"github.com/gin-gonic/gin"

	"insural/internal/core/id"
	"insural/internal/domain/purchase"
	"insural/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles purchase endpoints. Single purchases are
// addressed by the composite (insurance, user) key rather than the row
// identifier.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /purchases - the raw purchase records.
func (h *PurchaseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.GetAll(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]*dto.PurchaseResponse, len(items))
	for i, p := range items {
		dtos[i] = dto.FromPurchase(p)
	}

	h.OK(c, dtos)
}

// Details handles GET /purchases/details - purchases joined with buyer
// and policy data, one row per purchase.
func (h *PurchaseHandler) Details(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := h.service.GetDetails(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]dto.PurchaseDetailsResponse, len(rows))
	for i, d := range rows {
		dtos[i] = dto.FromPurchaseDetails(d)
	}

	h.OK(c, dtos)
}

// Create handles POST /purchases - record a policy purchase.
func (h *PurchaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(ctx, req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchase(created))
}

// Lookup handles GET /purchases/lookup?insuranceId=&userId= - fetch one
// purchase by its composite key.
func (h *PurchaseHandler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PurchaseKeyRequest
	if !h.BindQuery(c, &req) {
		return
	}

	p, err := h.service.GetByInsuranceAndUser(ctx, id.MustParse(req.InsuranceID), id.MustParse(req.UserID))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchase(p))
}

// UpdateStatus handles PUT /purchases/status - set the status of the
// purchase identified by the composite key. An omitted status confirms
// the purchase.
func (h *PurchaseHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdatePurchaseStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = purchase.StatusConfirmed
	}

	if _, err := h.service.UpdateStatus(ctx, id.MustParse(req.InsuranceID), id.MustParse(req.UserID), status); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "purchase status updated")
}
