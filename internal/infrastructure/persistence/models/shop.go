package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	OrderNo           uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	FullName          string               `gorm:"type:varchar(100);not null"`
	UserAgent         string               `gorm:"type:varchar(500)"`
	IPAddress         string               `gorm:"type:varchar(45)"`
	PaymentMethod     shop.PaymentMethod   `gorm:"type:varchar(20);not null"`
	Currency          valueobject.Currency `gorm:"type:varchar(3);not null;default:'KRW'"`
	Status            shop.OrderStatus     `gorm:"type:varchar(20);not null;default:'PAYMENT_PENDING';index"`
	ParentID          *uuid.UUID           `gorm:"type:uuid;index"`
	Message           string               `gorm:"type:text"`
	Suspicious        bool                 `gorm:"not null;default:false"`
	TotalListPrice    decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	TotalSellingPrice decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Products          []OrderProductModel  `gorm:"foreignKey:OrderID;references:ID"`
	Payments          []OrderPaymentModel  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *shop.Order {
	order := &shop.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNo:           m.OrderNo,
		FullName:          m.FullName,
		UserAgent:         m.UserAgent,
		IPAddress:         m.IPAddress,
		PaymentMethod:     m.PaymentMethod,
		Currency:          m.Currency,
		Status:            m.Status,
		ParentID:          m.ParentID,
		Message:           m.Message,
		Suspicious:        m.Suspicious,
		TotalListPrice:    m.TotalListPrice,
		TotalSellingPrice: m.TotalSellingPrice,
		Products:          make([]shop.OrderProduct, len(m.Products)),
		Payments:          make([]shop.OrderPayment, len(m.Payments)),
	}
	for i, p := range m.Products {
		order.Products[i] = *p.ToDomain()
	}
	for i, p := range m.Payments {
		order.Payments[i] = *p.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *shop.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNo = o.OrderNo
	m.FullName = o.FullName
	m.UserAgent = o.UserAgent
	m.IPAddress = o.IPAddress
	m.PaymentMethod = o.PaymentMethod
	m.Currency = o.Currency
	m.Status = o.Status
	m.ParentID = o.ParentID
	m.Message = o.Message
	m.Suspicious = o.Suspicious
	m.TotalListPrice = o.TotalListPrice
	m.TotalSellingPrice = o.TotalSellingPrice
	m.Products = make([]OrderProductModel, len(o.Products))
	for i := range o.Products {
		m.Products[i].FromDomain(&o.Products[i])
	}
	m.Payments = make([]OrderPaymentModel, len(o.Payments))
	for i := range o.Payments {
		m.Payments[i].FromDomain(&o.Payments[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *shop.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderProductModel is the persistence model for the OrderProduct line item.
type OrderProductModel struct {
	BaseModel
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Subtitle     string          `gorm:"type:varchar(200)"`
	Code         string          `gorm:"type:varchar(100);not null"`
	ListPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity     int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderProductModel) TableName() string {
	return "order_products"
}

// ToDomain converts the persistence model to a domain OrderProduct
func (m *OrderProductModel) ToDomain() *shop.OrderProduct {
	return &shop.OrderProduct{
		BaseEntity:   m.BaseModel.ToDomain(),
		OrderID:      m.OrderID,
		ProductID:    m.ProductID,
		Name:         m.Name,
		Subtitle:     m.Subtitle,
		Code:         m.Code,
		ListPrice:    m.ListPrice,
		SellingPrice: m.SellingPrice,
		Quantity:     m.Quantity,
	}
}

// FromDomain populates the persistence model from a domain OrderProduct
func (m *OrderProductModel) FromDomain(p *shop.OrderProduct) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.OrderID = p.OrderID
	m.ProductID = p.ProductID
	m.Name = p.Name
	m.Subtitle = p.Subtitle
	m.Code = p.Code
	m.ListPrice = p.ListPrice
	m.SellingPrice = p.SellingPrice
	m.Quantity = p.Quantity
}

// OrderPaymentModel is the persistence model for the OrderPayment row.
type OrderPaymentModel struct {
	BaseModel
	OrderID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Account  shop.PaymentAccount `gorm:"type:varchar(20);not null"`
	Amount   decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	Balance  decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	Received time.Time           `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// ToDomain converts the persistence model to a domain OrderPayment
func (m *OrderPaymentModel) ToDomain() *shop.OrderPayment {
	return &shop.OrderPayment{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		Account:    m.Account,
		Amount:     m.Amount,
		Balance:    m.Balance,
		Received:   m.Received,
	}
}

// FromDomain populates the persistence model from a domain OrderPayment
func (m *OrderPaymentModel) FromDomain(p *shop.OrderPayment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.OrderID = p.OrderID
	m.Account = p.Account
	m.Amount = p.Amount
	m.Balance = p.Balance
	m.Received = p.Received
}

// VoucherModel is the persistence model for the Voucher aggregate root.
// The (product_id, code) pair is unique across all rows, deleted included.
type VoucherModel struct {
	AggregateModel
	ProductID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_voucher_product_code,priority:1"`
	Code      string             `gorm:"type:varchar(200);not null;uniqueIndex:idx_voucher_product_code,priority:2"`
	Remarks   string             `gorm:"type:varchar(500)"`
	Status    shop.VoucherStatus `gorm:"type:varchar(20);not null;default:'PURCHASED';index"`
}

// TableName returns the table name for GORM
func (VoucherModel) TableName() string {
	return "vouchers"
}

// ToDomain converts the persistence model to a domain Voucher
func (m *VoucherModel) ToDomain() *shop.Voucher {
	return &shop.Voucher{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ProductID:         m.ProductID,
		Code:              m.Code,
		Remarks:           m.Remarks,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Voucher
func (m *VoucherModel) FromDomain(v *shop.Voucher) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.ProductID = v.ProductID
	m.Code = v.Code
	m.Remarks = v.Remarks
	m.Status = v.Status
}

// VoucherModelFromDomain creates a new persistence model from a domain Voucher
func VoucherModelFromDomain(v *shop.Voucher) *VoucherModel {
	m := &VoucherModel{}
	m.FromDomain(v)
	return m
}

// OrderProductVoucherModel is the persistence model for the voucher binding.
// VoucherID is nullable so voucher deletion never destroys order history.
type OrderProductVoucherModel struct {
	BaseModel
	OrderProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VoucherID      *uuid.UUID `gorm:"type:uuid;index"`
	Code           string     `gorm:"type:varchar(200);not null"`
	Revoked        bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OrderProductVoucherModel) TableName() string {
	return "order_product_vouchers"
}

// ToDomain converts the persistence model to a domain OrderProductVoucher
func (m *OrderProductVoucherModel) ToDomain() *shop.OrderProductVoucher {
	return &shop.OrderProductVoucher{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrderProductID: m.OrderProductID,
		VoucherID:      m.VoucherID,
		Code:           m.Code,
		Revoked:        m.Revoked,
	}
}

// FromDomain populates the persistence model from a domain OrderProductVoucher
func (m *OrderProductVoucherModel) FromDomain(b *shop.OrderProductVoucher) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.OrderProductID = b.OrderProductID
	m.VoucherID = b.VoucherID
	m.Code = b.Code
	m.Revoked = b.Revoked
}

// OrderProductVoucherModelFromDomain creates a new persistence model from a domain binding
func OrderProductVoucherModelFromDomain(b *shop.OrderProductVoucher) *OrderProductVoucherModel {
	m := &OrderProductVoucherModel{}
	m.FromDomain(b)
	return m
}
