package feedback

import (
	"context"

	"insural/internal/core/id"
	"insural/internal/core/tx"
	"insural/internal/domain"
	"insural/pkg/logger"
)

// Service provides business logic for feedback entries.
type Service struct {
	*domain.CrudService[*Feedback]
}

// NewService creates a new feedback service.
func NewService(repo domain.Repository[*Feedback], txManager tx.Manager) *Service {
	return &Service{
		CrudService: domain.NewCrudService(repo, txManager, "feedback"),
	}
}

// MarkPurchased flips the purchase-linkage flag on an existing entry.
// The lookup runs first; an unresolved identifier is a not-found, no write
// is attempted.
func (s *Service) MarkPurchased(ctx context.Context, feedbackID id.ID) (*Feedback, error) {
	fb, err := s.Repo().GetByID(ctx, feedbackID)
	if err != nil {
		return nil, s.NormalizeGetErr(err, feedbackID.String())
	}

	fb.IsPurchase = true

	updated, err := s.Update(ctx, fb)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "feedback linked to purchase", "feedback_id", feedbackID)
	return updated, nil
}
