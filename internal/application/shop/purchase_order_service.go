package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
)

// PurchaseOrderService handles supplier payable operations
type PurchaseOrderService struct {
	purchaseOrderRepo shop.PurchaseOrderRepository
	reconciler        *shop.ReconciliationService
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(purchaseOrderRepo shop.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		purchaseOrderRepo: purchaseOrderRepo,
		reconciler:        shop.NewReconciliationService(),
	}
}

// Create creates a new unpaid purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	currency := valueobject.Currency(req.Currency)
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	amount, err := valueobject.NewMoney(req.Amount, currency)
	if err != nil {
		return nil, err
	}

	po, err := shop.NewPurchaseOrder(req.Title, req.Content, req.BankAccount, amount)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseOrderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, poID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.purchaseOrderRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := s.buildFilter(filter)

	purchaseOrders, err := s.purchaseOrderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.purchaseOrderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(purchaseOrders), total, nil
}

// RecordPayment records an outgoing payment against a purchase order
func (s *PurchaseOrderService) RecordPayment(ctx context.Context, poID uuid.UUID, req RecordPurchaseOrderPaymentRequest) (*PurchaseOrderResponse, error) {
	po, err := s.purchaseOrderRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoney(req.Amount, po.Currency)
	if err != nil {
		return nil, err
	}

	if _, err := po.RecordPayment(req.Account, amount); err != nil {
		return nil, err
	}

	if err := s.purchaseOrderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// RemovePayment soft-deletes a payout row
func (s *PurchaseOrderService) RemovePayment(ctx context.Context, poID, paymentID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.purchaseOrderRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}

	if err := po.RemovePayment(paymentID); err != nil {
		return nil, err
	}

	if err := s.purchaseOrderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// MarkPaid settles a purchase order once its payouts cover the invoice
func (s *PurchaseOrderService) MarkPaid(ctx context.Context, poID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.purchaseOrderRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}

	if err := po.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.purchaseOrderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// ProposePayment suggests the next payout amount for a purchase order
func (s *PurchaseOrderService) ProposePayment(ctx context.Context, poID uuid.UUID) (*PaymentProposalResponse, error) {
	po, err := s.purchaseOrderRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentProposalResponse(s.reconciler.ProposePurchaseOrderPayment(po))
	return &response, nil
}

// Delete soft-deletes a purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, poID uuid.UUID) error {
	return s.purchaseOrderRepo.Delete(ctx, poID)
}

func (s *PurchaseOrderService) buildFilter(filter PurchaseOrderListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:           filter.Page,
		PageSize:       filter.PageSize,
		OrderBy:        filter.OrderBy,
		OrderDir:       filter.OrderDir,
		Search:         filter.Search,
		IncludeDeleted: filter.IncludeDeleted,
		Filters:        make(map[string]interface{}),
	}

	if filter.Paid != nil {
		domainFilter.Filters["paid"] = *filter.Paid
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	return domainFilter
}
