package insurance

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/core/tx"
	"insural/internal/domain"
	"insural/pkg/logger"
)

// Uploader stores a binary payload in object storage and returns a durable
// URL. The implementation lives in infrastructure/storage/s3.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, size int64, contentType string) (string, error)
}

// ImageUpload carries a replacement policy image from the request.
type ImageUpload struct {
	Filename    string
	Content     io.Reader
	Size        int64
	ContentType string
}

// UpdateParams lists the mutable fields of a policy. Nil fields are left
// untouched on the stored entity.
type UpdateParams struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Image       *ImageUpload
}

// Service provides business logic for insurance policies.
type Service struct {
	*domain.CrudService[*Insurance]
	uploader Uploader
}

// NewService creates a new insurance service.
func NewService(repo domain.Repository[*Insurance], txManager tx.Manager, uploader Uploader) *Service {
	return &Service{
		CrudService: domain.NewCrudService(repo, txManager, "insurance"),
		uploader:    uploader,
	}
}

// Update applies a partial update. When the params carry a replacement
// image, the upload must complete before anything is persisted: a failed
// upload aborts the update and the stored entity keeps its previous image.
func (s *Service) Update(ctx context.Context, insuranceID id.ID, params UpdateParams) (*Insurance, error) {
	ins, err := s.Repo().GetByID(ctx, insuranceID)
	if err != nil {
		return nil, s.NormalizeGetErr(err, insuranceID.String())
	}

	if params.Image != nil {
		url, err := s.uploader.Upload(ctx, params.Image.Filename, params.Image.Content, params.Image.Size, params.Image.ContentType)
		if err != nil {
			return nil, apperror.NewUpstream("object storage", err).
				WithDetail("filename", params.Image.Filename)
		}
		ins.ImageURL = url
		logger.Info(ctx, "insurance image replaced",
			"insurance_id", insuranceID,
			"url", url)
	}

	if params.Name != nil {
		ins.Name = *params.Name
	}
	if params.Price != nil {
		ins.Price = *params.Price
	}
	if params.Description != nil {
		ins.Description = *params.Description
	}

	return s.CrudService.Update(ctx, ins)
}
