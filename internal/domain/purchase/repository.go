package purchase

import (
	"context"

	"insural/internal/core/id"
	"insural/internal/domain"
)

// Repository extends the generic gateway with the composite-key lookup and
// the details projection.
type Repository interface {
	domain.Repository[*Purchase]

	// GetByInsuranceAndUser retrieves a purchase by its composite key.
	GetByInsuranceAndUser(ctx context.Context, insuranceID, userID id.ID) (*Purchase, error)

	// GetDetails retrieves the denormalized purchase rows, joined against
	// users and insurances.
	GetDetails(ctx context.Context) ([]Details, error)
}
