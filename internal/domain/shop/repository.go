package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	// FindByID finds an order by ID with its products and payments
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNo finds an order by its external order number
	FindByOrderNo(ctx context.Context, orderNo uuid.UUID) (*Order, error)

	// FindAll finds orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindRefundsOf finds refund child orders of the given order
	FindRefundsOf(ctx context.Context, parentID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save persists an order with its products and payments
	Save(ctx context.Context, order *Order) error

	// Delete soft-deletes an order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// VoucherRepository defines persistence operations for voucher inventory
type VoucherRepository interface {
	// FindByID finds a voucher by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Voucher, error)

	// FindAll finds vouchers with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Voucher, error)

	// ExistsByProductAndCode reports whether a (product, code) pair exists,
	// soft-deleted rows included
	ExistsByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (bool, error)

	// CountAvailable counts PURCHASED vouchers for a product
	CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error)

	// Save persists a voucher
	Save(ctx context.Context, voucher *Voucher) error

	// SaveBatch persists vouchers atomically; no partial writes
	SaveBatch(ctx context.Context, vouchers []*Voucher) error

	// Allocate atomically claims the oldest PURCHASED voucher for the product,
	// marks it SOLD and binds it to the order product. Returns ErrOutOfStock
	// when no voucher can be claimed.
	Allocate(ctx context.Context, productID, orderProductID uuid.UUID) (*OrderProductVoucher, error)

	// FindBindingByID finds a voucher binding by ID
	FindBindingByID(ctx context.Context, id uuid.UUID) (*OrderProductVoucher, error)

	// FindBindingsByOrderProduct finds bindings for an order line item
	FindBindingsByOrderProduct(ctx context.Context, orderProductID uuid.UUID) ([]OrderProductVoucher, error)

	// SaveBinding persists a voucher binding
	SaveBinding(ctx context.Context, binding *OrderProductVoucher) error

	// Delete soft-deletes a voucher
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts vouchers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by ID with its payments
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindAll finds purchase orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// Save persists a purchase order with its payments
	Save(ctx context.Context, po *PurchaseOrder) error

	// Delete soft-deletes a purchase order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProductRepository defines persistence operations for the catalog
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its unique slug
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindAll finds products with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByStore finds products belonging to a store
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// Save persists a product
	Save(ctx context.Context, product *Product) error

	// Delete soft-deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StoreRepository defines persistence operations for stores
type StoreRepository interface {
	// FindByID finds a store by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindByCode finds a store by its unique slug
	FindByCode(ctx context.Context, code string) (*Store, error)

	// FindAll finds stores with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Store, error)

	// Save persists a store
	Save(ctx context.Context, store *Store) error

	// Delete soft-deletes a store
	Delete(ctx context.Context, id uuid.UUID) error
}
