package postgres

import (
	"insural/internal/domain/insurance"
)

const insuranceTable = "insurances"

// InsuranceRepo implements domain.Repository for insurance policies.
type InsuranceRepo struct {
	*BaseRepo[*insurance.Insurance]
}

// NewInsuranceRepo creates a new insurance repository.
func NewInsuranceRepo(txm *TxManager) *InsuranceRepo {
	return &InsuranceRepo{
		BaseRepo: NewBaseRepo(
			txm,
			insuranceTable,
			ExtractDBColumns[insurance.Insurance](),
			func() *insurance.Insurance { return &insurance.Insurance{} },
		),
	}
}
