package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
)

// VoucherStatus represents the lifecycle state of a voucher code
type VoucherStatus string

const (
	VoucherStatusPurchased VoucherStatus = "PURCHASED"
	VoucherStatusSold      VoucherStatus = "SOLD"
	VoucherStatusRevoked   VoucherStatus = "REVOKED"
)

// IsValid checks if the status is a valid VoucherStatus
func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherStatusPurchased, VoucherStatusSold, VoucherStatusRevoked:
		return true
	}
	return false
}

// String returns the string representation of VoucherStatus
func (s VoucherStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Revocation is final: a revoked code never returns to PURCHASED.
func (s VoucherStatus) CanTransitionTo(target VoucherStatus) bool {
	switch s {
	case VoucherStatusPurchased:
		return target == VoucherStatusSold
	case VoucherStatusSold:
		return target == VoucherStatusRevoked
	case VoucherStatusRevoked:
		return false
	}
	return false
}

// Voucher represents a purchased voucher code held in inventory.
// Codes are unique per product, soft-deleted rows included.
type Voucher struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID
	Code      string
	Remarks   string
	Status    VoucherStatus
}

// NewVoucher creates a new voucher in PURCHASED status
func NewVoucher(productID uuid.UUID, code, remarks string) (*Voucher, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_VOUCHER_CODE", "Voucher code cannot be empty")
	}

	return &Voucher{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Code:              code,
		Remarks:           remarks,
		Status:            VoucherStatusPurchased,
	}, nil
}

// MarkSold transitions the voucher from PURCHASED to SOLD
func (v *Voucher) MarkSold() error {
	if !v.Status.CanTransitionTo(VoucherStatusSold) {
		return shared.ErrIllegalStatusTransition
	}
	v.Status = VoucherStatusSold
	v.UpdatedAt = time.Now()
	return nil
}

// Revoke transitions the voucher from SOLD to REVOKED.
// Revoking an already revoked voucher is a no-op.
func (v *Voucher) Revoke() error {
	if v.Status == VoucherStatusRevoked {
		return nil
	}
	if !v.Status.CanTransitionTo(VoucherStatusRevoked) {
		return shared.ErrIllegalStatusTransition
	}
	v.Status = VoucherStatusRevoked
	v.UpdatedAt = time.Now()
	v.AddDomainEvent(NewVoucherRevokedEvent(v))
	return nil
}

// IsAvailable returns true if the voucher can still be allocated
func (v *Voucher) IsAvailable() bool {
	return v.Status == VoucherStatusPurchased && !v.IsDeleted()
}

// OrderProductVoucher binds an allocated voucher to an order line item.
// The code is copied at bind time and VoucherID is nullable so deleting a
// voucher never destroys order history.
type OrderProductVoucher struct {
	shared.BaseEntity
	OrderProductID uuid.UUID
	VoucherID      *uuid.UUID
	Code           string
	Revoked        bool
}

// NewOrderProductVoucher creates a binding for an allocated voucher
func NewOrderProductVoucher(orderProductID uuid.UUID, voucher *Voucher) (*OrderProductVoucher, error) {
	if orderProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER_PRODUCT", "Order product ID cannot be empty")
	}
	if voucher == nil {
		return nil, shared.NewDomainError("INVALID_VOUCHER", "Voucher cannot be nil")
	}

	voucherID := voucher.ID
	return &OrderProductVoucher{
		BaseEntity:     shared.NewBaseEntity(),
		OrderProductID: orderProductID,
		VoucherID:      &voucherID,
		Code:           voucher.Code,
	}, nil
}

// MarkRevoked flags the binding as revoked. Idempotent.
func (b *OrderProductVoucher) MarkRevoked() {
	if b.Revoked {
		return
	}
	b.Revoked = true
	b.UpdatedAt = time.Now()
}
