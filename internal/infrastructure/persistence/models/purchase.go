package models

import (
	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	AggregateModel
	Title       string                      `gorm:"type:varchar(200);not null"`
	Content     string                      `gorm:"type:text"`
	BankAccount string                      `gorm:"type:varchar(100)"`
	Amount      decimal.Decimal             `gorm:"type:decimal(18,2);not null"`
	Currency    valueobject.Currency        `gorm:"type:varchar(3);not null;default:'KRW'"`
	Paid        bool                        `gorm:"not null;default:false;index"`
	Payments    []PurchaseOrderPaymentModel `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *shop.PurchaseOrder {
	po := &shop.PurchaseOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Content:           m.Content,
		BankAccount:       m.BankAccount,
		Amount:            m.Amount,
		Currency:          m.Currency,
		Paid:              m.Paid,
		Payments:          make([]shop.PurchaseOrderPayment, len(m.Payments)),
	}
	for i, p := range m.Payments {
		po.Payments[i] = *p.ToDomain()
	}
	return po
}

// FromDomain populates the persistence model from a domain PurchaseOrder
func (m *PurchaseOrderModel) FromDomain(po *shop.PurchaseOrder) {
	m.FromDomainAggregateRoot(po.BaseAggregateRoot)
	m.Title = po.Title
	m.Content = po.Content
	m.BankAccount = po.BankAccount
	m.Amount = po.Amount
	m.Currency = po.Currency
	m.Paid = po.Paid
	m.Payments = make([]PurchaseOrderPaymentModel, len(po.Payments))
	for i := range po.Payments {
		m.Payments[i].FromDomain(&po.Payments[i])
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder
func PurchaseOrderModelFromDomain(po *shop.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// PurchaseOrderPaymentModel is the persistence model for the PurchaseOrderPayment row.
type PurchaseOrderPaymentModel struct {
	BaseModel
	PurchaseOrderID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Account         shop.BankAccount `gorm:"type:varchar(20);not null"`
	Amount          decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderPaymentModel) TableName() string {
	return "purchase_order_payments"
}

// ToDomain converts the persistence model to a domain PurchaseOrderPayment
func (m *PurchaseOrderPaymentModel) ToDomain() *shop.PurchaseOrderPayment {
	return &shop.PurchaseOrderPayment{
		BaseEntity:      m.BaseModel.ToDomain(),
		PurchaseOrderID: m.PurchaseOrderID,
		Account:         m.Account,
		Amount:          m.Amount,
	}
}

// FromDomain populates the persistence model from a domain PurchaseOrderPayment
func (m *PurchaseOrderPaymentModel) FromDomain(p *shop.PurchaseOrderPayment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PurchaseOrderID = p.PurchaseOrderID
	m.Account = p.Account
	m.Amount = p.Amount
}
