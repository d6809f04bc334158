package shop

import (
	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeVoucher = "Voucher"

// Event type constants
const (
	EventTypeVoucherAllocated = "VoucherAllocated"
	EventTypeVoucherRevoked   = "VoucherRevoked"
)

// VoucherAllocatedEvent is raised when a voucher is allocated to an order line
type VoucherAllocatedEvent struct {
	shared.BaseDomainEvent
	VoucherID      uuid.UUID `json:"voucher_id"`
	ProductID      uuid.UUID `json:"product_id"`
	OrderProductID uuid.UUID `json:"order_product_id"`
	Code           string    `json:"code"`
}

// NewVoucherAllocatedEvent creates a new VoucherAllocatedEvent
func NewVoucherAllocatedEvent(voucher *Voucher, orderProductID uuid.UUID) *VoucherAllocatedEvent {
	return &VoucherAllocatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVoucherAllocated, AggregateTypeVoucher, voucher.ID),
		VoucherID:       voucher.ID,
		ProductID:       voucher.ProductID,
		OrderProductID:  orderProductID,
		Code:            voucher.Code,
	}
}

// EventType returns the event type name
func (e *VoucherAllocatedEvent) EventType() string {
	return EventTypeVoucherAllocated
}

// VoucherRevokedEvent is raised when a sold voucher is revoked
type VoucherRevokedEvent struct {
	shared.BaseDomainEvent
	VoucherID uuid.UUID `json:"voucher_id"`
	ProductID uuid.UUID `json:"product_id"`
	Code      string    `json:"code"`
}

// NewVoucherRevokedEvent creates a new VoucherRevokedEvent
func NewVoucherRevokedEvent(voucher *Voucher) *VoucherRevokedEvent {
	return &VoucherRevokedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVoucherRevoked, AggregateTypeVoucher, voucher.ID),
		VoucherID:       voucher.ID,
		ProductID:       voucher.ProductID,
		Code:            voucher.Code,
	}
}

// EventType returns the event type name
func (e *VoucherRevokedEvent) EventType() string {
	return EventTypeVoucherRevoked
}
