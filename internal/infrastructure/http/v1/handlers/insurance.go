package handlers

import (
	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/insurance"
	"insural/internal/infrastructure/http/v1/dto"
)

// maxImageSize caps uploaded policy images at 10 MiB.
const maxImageSize = 10 << 20

// InsuranceHandler handles insurance policy endpoints. Create accepts
// plain JSON; Update accepts a multipart form so a replacement image can
// travel with the scalar fields.
type InsuranceHandler struct {
	*CrudHandler[*insurance.Insurance, dto.CreateInsuranceRequest, dto.UpdateInsuranceForm]
	service *insurance.Service
}

// NewInsuranceHandler creates a new insurance handler.
func NewInsuranceHandler(base *BaseHandler, service *insurance.Service) *InsuranceHandler {
	return &InsuranceHandler{
		// The embedded generic service backs List/Get/Create/Delete; Update
		// is overridden below with the multipart flow.
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[*insurance.Insurance, dto.CreateInsuranceRequest, dto.UpdateInsuranceForm]{
			Service:    service.CrudService,
			EntityName: "insurance",
			MapCreateDTO: func(req dto.CreateInsuranceRequest) *insurance.Insurance {
				return req.ToEntity()
			},
			MapToDTO: func(ins *insurance.Insurance) any {
				return dto.FromInsurance(ins)
			},
		}),
		service: service,
	}
}

// Update handles PUT /insurances/:id as multipart/form-data. When the form
// carries an image, its upload must succeed before anything is stored.
func (h *InsuranceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	insuranceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var form dto.UpdateInsuranceForm
	if err := c.ShouldBind(&form); err != nil {
		h.Error(c, bindError(err))
		return
	}

	params := form.ToParams()

	if form.Image != nil {
		if form.Image.Size > maxImageSize {
			h.Error(c, apperror.NewValidation("image exceeds the size limit").
				WithDetail("field", "image").
				WithDetail("maxBytes", maxImageSize))
			return
		}

		file, err := form.Image.Open()
		if err != nil {
			h.Error(c, apperror.NewValidation("unreadable image upload").
				WithDetail("field", "image"))
			return
		}
		defer func() { _ = file.Close() }()

		params.Image = &insurance.ImageUpload{
			Filename:    form.Image.Filename,
			Content:     file,
			Size:        form.Image.Size,
			ContentType: form.Image.Header.Get("Content-Type"),
		}
	}

	updated, err := h.service.Update(ctx, insuranceID, params)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInsurance(updated))
}
