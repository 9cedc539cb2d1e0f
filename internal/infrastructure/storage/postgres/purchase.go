package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/purchase"
)

const purchaseTable = "purchases"

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseRepo[*purchase.Purchase]
}

// Compile-time check.
var _ purchase.Repository = (*PurchaseRepo)(nil)

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseRepo: NewBaseRepo(
			txm,
			purchaseTable,
			ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// GetByInsuranceAndUser retrieves a purchase by its composite key.
func (r *PurchaseRepo) GetByInsuranceAndUser(ctx context.Context, insuranceID, userID id.ID) (*purchase.Purchase, error) {
	p := &purchase.Purchase{}

	q := r.Builder().
		Select(ExtractDBColumns[purchase.Purchase]()...).
		From(purchaseTable).
		Where(squirrel.Eq{"insurance_id": insuranceID}).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(purchaseTable, insuranceID.String()+"/"+userID.String())
		}
		return nil, fmt.Errorf("get by insurance and user: %w", err)
	}

	return p, nil
}

// GetDetails retrieves the details projection: one row per purchase joined
// against users and insurances. Query-time aggregation, nothing is
// materialized.
func (r *PurchaseRepo) GetDetails(ctx context.Context) ([]purchase.Details, error) {
	q := r.Builder().
		Select(
			"p.id",
			"p.user_id",
			"u.email",
			"u.name",
			"u.phone",
			"i.name AS insurance_name",
			"i.price AS insurance_price",
			"p.status",
			"p.purchase_date",
		).
		From(purchaseTable + " p").
		Join("users u ON u.id = p.user_id").
		Join("insurances i ON i.id = p.insurance_id").
		OrderBy("p.purchase_date DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []purchase.Details
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select purchase details: %w", err)
	}

	return rows, nil
}
