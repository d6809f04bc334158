package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductStatus controls whether a product is visible in the shop
type ProductStatus string

const (
	ProductStatusEnabled  ProductStatus = "ENABLED"
	ProductStatusDisabled ProductStatus = "DISABLED"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusEnabled || s == ProductStatusDisabled
}

// String returns the string representation of ProductStatus
func (s ProductStatus) String() string {
	return string(s)
}

// StockStatus reflects voucher availability for a product
type StockStatus string

const (
	StockStatusInStock StockStatus = "IN_STOCK"
	StockStatusSoldOut StockStatus = "SOLD_OUT"
)

// IsValid checks if the status is a valid StockStatus
func (s StockStatus) IsValid() bool {
	return s == StockStatusInStock || s == StockStatusSoldOut
}

// String returns the string representation of StockStatus
func (s StockStatus) String() string {
	return string(s)
}

// Product represents a sellable voucher product in the catalog
type Product struct {
	shared.BaseAggregateRoot
	StoreID       uuid.UUID
	Name          string
	Subtitle      string
	Code          string // unique slug
	ListPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	Status        ProductStatus
	StockStatus   StockStatus
	StockQuantity int
	Position      int
	Description   string
}

// NewProduct creates a new enabled product
func NewProduct(storeID uuid.UUID, name, subtitle, code string, listPrice, sellingPrice valueobject.Money) (*Product, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if listPrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Name:              name,
		Subtitle:          subtitle,
		Code:              code,
		ListPrice:         listPrice.Amount(),
		SellingPrice:      sellingPrice.Amount(),
		Status:            ProductStatusEnabled,
		StockStatus:       StockStatusSoldOut,
		StockQuantity:     0,
		Position:          0,
	}, nil
}

// UpdatePricing updates the list and selling price
func (p *Product) UpdatePricing(listPrice, sellingPrice valueobject.Money) error {
	if listPrice.IsNegative() || sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.ListPrice = listPrice.Amount()
	p.SellingPrice = sellingPrice.Amount()
	p.UpdatedAt = time.Now()
	return nil
}

// Enable makes the product visible in the shop
func (p *Product) Enable() {
	p.Status = ProductStatusEnabled
	p.UpdatedAt = time.Now()
}

// Disable hides the product from the shop
func (p *Product) Disable() {
	p.Status = ProductStatusDisabled
	p.UpdatedAt = time.Now()
}

// UpdateStock sets the stock quantity and derives the stock status
func (p *Product) UpdateStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}
	p.StockQuantity = quantity
	if quantity > 0 {
		p.StockStatus = StockStatusInStock
	} else {
		p.StockStatus = StockStatusSoldOut
	}
	p.UpdatedAt = time.Now()
	return nil
}

// IsAvailable returns true if the product can be ordered
func (p *Product) IsAvailable() bool {
	return p.Status == ProductStatusEnabled && p.StockStatus == StockStatusInStock && !p.IsDeleted()
}
