package shop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
)

// OrderService handles order ledger operations
type OrderService struct {
	orderRepo   shop.OrderRepository
	productRepo shop.ProductRepository
	reconciler  *shop.ReconciliationService
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo shop.OrderRepository, productRepo shop.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		reconciler:  shop.NewReconciliationService(),
	}
}

// Create creates a new order. Line items snapshot the referenced catalog
// products so later price changes never rewrite order history.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := shop.NewOrder(req.FullName, valueobject.Currency(req.Currency), req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	order.UserAgent = req.UserAgent
	order.IPAddress = req.IPAddress
	order.Message = req.Message

	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsAvailable() {
			return nil, shared.ErrOutOfStock
		}

		listPrice, err := valueobject.NewMoney(product.ListPrice, order.Currency)
		if err != nil {
			return nil, err
		}
		sellingPrice, err := valueobject.NewMoney(product.SellingPrice, order.Currency)
		if err != nil {
			return nil, err
		}

		if _, err := order.AddProduct(
			product.ID, product.Name, product.Subtitle, product.Code,
			listPrice, sellingPrice, item.Quantity,
		); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// GetByOrderNo retrieves an order by its external order number
func (s *OrderService) GetByOrderNo(ctx context.Context, orderNo uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderListItemResponse, int64, error) {
	domainFilter := s.buildFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderListItemResponses(orders), total, nil
}

// RecordPayment records an incoming payment against an order. Overpayment is
// allowed and only reflected in the outstanding balance.
func (s *OrderService) RecordPayment(ctx context.Context, orderID uuid.UUID, req RecordOrderPaymentRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoney(req.Amount, order.Currency)
	if err != nil {
		return nil, err
	}
	balance, err := valueobject.NewMoney(req.Balance, order.Currency)
	if err != nil {
		return nil, err
	}

	received := time.Now()
	if req.Received != nil {
		received = *req.Received
	}

	if _, err := order.RecordPayment(req.Account, amount, balance, received); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// RemovePayment soft-deletes a payment row; the row stays visible in audit views
func (s *OrderService) RemovePayment(ctx context.Context, orderID, paymentID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemovePayment(paymentID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Transition moves an order to a new status along the allowed edges
func (s *OrderService) Transition(ctx context.Context, orderID uuid.UUID, req TransitionOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(req.Status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// CreateRefund opens a refund child order for an order
func (s *OrderService) CreateRefund(ctx context.Context, orderID uuid.UUID, req CreateRefundOrderRequest) (*OrderResponse, error) {
	parent, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	refund, err := parent.NewRefundOrder(req.Message)
	if err != nil {
		return nil, err
	}

	if err := parent.TransitionTo(shop.OrderStatusRefundRequested); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, parent); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, refund); err != nil {
		return nil, err
	}

	response := ToOrderResponse(refund)
	return &response, nil
}

// ListRefunds retrieves refund child orders of an order
func (s *OrderService) ListRefunds(ctx context.Context, orderID uuid.UUID) ([]OrderListItemResponse, error) {
	refunds, err := s.orderRepo.FindRefundsOf(ctx, orderID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToOrderListItemResponses(refunds), nil
}

// ProposePayment suggests the next payment amount for an order
func (s *OrderService) ProposePayment(ctx context.Context, orderID uuid.UUID) (*PaymentProposalResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentProposalResponse(s.reconciler.ProposeOrderPayment(order))
	return &response, nil
}

// MarkSuspicious flags an order for manual review
func (s *OrderService) MarkSuspicious(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.MarkSuspicious()

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete soft-deletes an order
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.orderRepo.Delete(ctx, orderID)
}

func (s *OrderService) buildFilter(filter OrderListFilter) shared.Filter {
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

	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if len(filter.Statuses) > 0 {
		domainFilter.Filters["statuses"] = filter.Statuses
	}
	if filter.PaymentMethod != nil {
		domainFilter.Filters["payment_method"] = string(*filter.PaymentMethod)
	}
	if filter.Suspicious != nil {
		domainFilter.Filters["suspicious"] = *filter.Suspicious
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	return domainFilter
}
