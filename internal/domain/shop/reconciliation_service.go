package shop

import (
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
)

// PaymentProposal is a pre-filled payment suggestion for the admin UI
type PaymentProposal struct {
	Amount valueobject.Money `json:"amount"`
}

// ReconciliationService computes payment proposals from ledger state.
// All methods are pure projections: nothing is read from or written to
// storage, and the input aggregates are never mutated.
type ReconciliationService struct{}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService() *ReconciliationService {
	return &ReconciliationService{}
}

// ProposeOrderPayment proposes the next payment amount for an order:
// the outstanding balance over non-deleted payments. With no payments
// the proposal is the full order total; an overpaid order yields a
// negative proposal.
func (s *ReconciliationService) ProposeOrderPayment(order *Order) PaymentProposal {
	return PaymentProposal{Amount: order.OutstandingBalance()}
}

// ProposePurchaseOrderPayment proposes the next payout amount for a
// purchase order: the invoice amount minus non-deleted payments.
func (s *ReconciliationService) ProposePurchaseOrderPayment(po *PurchaseOrder) PaymentProposal {
	return PaymentProposal{Amount: po.OutstandingBalance()}
}
