package shop

import (
	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated         = "OrderCreated"
	EventTypeOrderStatusChanged   = "OrderStatusChanged"
	EventTypeOrderPaymentRecorded = "OrderPaymentRecorded"
)

// OrderCreatedEvent is raised when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID  `json:"order_id"`
	OrderNo       uuid.UUID  `json:"order_no"`
	FullName      string     `json:"full_name"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNo:         order.OrderNo,
		FullName:        order.FullName,
		ParentID:        order.ParentID,
		Status:          order.Status.String(),
		PaymentMethod:   order.PaymentMethod.String(),
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OrderStatusChangedEvent is raised when an order moves along the status ledger
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	OrderNo    uuid.UUID `json:"order_no"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(order *Order, from, to OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNo:         order.OrderNo,
		FromStatus:      from.String(),
		ToStatus:        to.String(),
	}
}

// EventType returns the event type name
func (e *OrderStatusChangedEvent) EventType() string {
	return EventTypeOrderStatusChanged
}

// OrderPaymentRecordedEvent is raised when a payment is recorded against an order
type OrderPaymentRecordedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNo     uuid.UUID       `json:"order_no"`
	PaymentID   uuid.UUID       `json:"payment_id"`
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// NewOrderPaymentRecordedEvent creates a new OrderPaymentRecordedEvent
func NewOrderPaymentRecordedEvent(order *Order, payment *OrderPayment) *OrderPaymentRecordedEvent {
	return &OrderPaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaymentRecorded, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNo:         order.OrderNo,
		PaymentID:       payment.ID,
		Account:         payment.Account.String(),
		Amount:          payment.Amount,
		Outstanding:     order.OutstandingBalance().Amount(),
	}
}

// EventType returns the event type name
func (e *OrderPaymentRecordedEvent) EventType() string {
	return EventTypeOrderPaymentRecorded
}
