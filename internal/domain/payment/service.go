package payment

import (
	"context"

	"insural/internal/core/id"
	"insural/internal/core/tx"
	"insural/internal/domain"
)

// UpdateParams lists the mutable fields of a payment. Nil fields are left
// untouched on the stored entity.
type UpdateParams struct {
	Status *string
	Reason *string
}

// Service provides business logic for payments.
type Service struct {
	*domain.CrudService[*Payment]
}

// NewService creates a new payment service.
func NewService(repo domain.Repository[*Payment], txManager tx.Manager) *Service {
	return &Service{
		CrudService: domain.NewCrudService(repo, txManager, "payment"),
	}
}

// Update applies a partial update to status and reason. Identity fields
// stay exactly as stored.
func (s *Service) Update(ctx context.Context, paymentID id.ID, params UpdateParams) (*Payment, error) {
	p, err := s.Repo().GetByID(ctx, paymentID)
	if err != nil {
		return nil, s.NormalizeGetErr(err, paymentID.String())
	}

	if params.Status != nil {
		p.Status = *params.Status
	}
	if params.Reason != nil {
		p.Reason = *params.Reason
	}

	return s.CrudService.Update(ctx, p)
}
