package postgres

import (
	"insural/internal/domain/payment"
)

const paymentTable = "payments"

// PaymentRepo implements domain.Repository for payments.
type PaymentRepo struct {
	*BaseRepo[*payment.Payment]
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(txm *TxManager) *PaymentRepo {
	return &PaymentRepo{
		BaseRepo: NewBaseRepo(
			txm,
			paymentTable,
			ExtractDBColumns[payment.Payment](),
			func() *payment.Payment { return &payment.Payment{} },
		),
	}
}
