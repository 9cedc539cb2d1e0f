package purchase

import (
	"context"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/core/tx"
	"insural/internal/domain"
	"insural/pkg/logger"
)

// Service provides business logic for purchases.
type Service struct {
	*domain.CrudService[*Purchase]
	repo Repository
}

// NewService creates a new purchase service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CrudService: domain.NewCrudService[*Purchase](repo, txManager, "purchase"),
		repo:        repo,
	}
}

// GetByInsuranceAndUser retrieves a purchase by its composite key.
func (s *Service) GetByInsuranceAndUser(ctx context.Context, insuranceID, userID id.ID) (*Purchase, error) {
	p, err := s.repo.GetByInsuranceAndUser(ctx, insuranceID, userID)
	if err != nil {
		return nil, s.NormalizeGetErr(err, insuranceID.String()+"/"+userID.String())
	}
	return p, nil
}

// GetDetails retrieves the denormalized details view, one row per purchase.
func (s *Service) GetDetails(ctx context.Context) ([]Details, error) {
	rows, err := s.repo.GetDetails(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("entity", s.EntityName())
	}
	if rows == nil {
		rows = []Details{}
	}
	return rows, nil
}

// UpdateStatus sets the status of the purchase identified by the composite
// key. An unresolved key is a not-found; nothing is written.
func (s *Service) UpdateStatus(ctx context.Context, insuranceID, userID id.ID, status string) (*Purchase, error) {
	p, err := s.repo.GetByInsuranceAndUser(ctx, insuranceID, userID)
	if err != nil {
		return nil, s.NormalizeGetErr(err, insuranceID.String()+"/"+userID.String())
	}

	p.Status = status

	updated, err := s.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase status updated",
		"purchase_id", p.ID,
		"status", status)
	return updated, nil
}
