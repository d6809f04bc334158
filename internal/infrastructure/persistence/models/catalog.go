package models

import (
	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// StoreModel is the persistence model for the Store aggregate root.
type StoreModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null"`
	Code        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Theme       string `gorm:"type:varchar(50);not null;default:'default'"`
	Phone       string `gorm:"type:varchar(20)"`
	PhoneBank   string `gorm:"type:varchar(20)"`
	ChunkSize   int    `gorm:"not null;default:10"`
	SignupOpen  bool   `gorm:"not null;default:true"`
	UnderAttack bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the persistence model to a domain Store
func (m *StoreModel) ToDomain() *shop.Store {
	return &shop.Store{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Code:              m.Code,
		Theme:             m.Theme,
		Phone:             m.Phone,
		PhoneBank:         m.PhoneBank,
		ChunkSize:         m.ChunkSize,
		SignupOpen:        m.SignupOpen,
		UnderAttack:       m.UnderAttack,
	}
}

// FromDomain populates the persistence model from a domain Store
func (m *StoreModel) FromDomain(s *shop.Store) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.Code = s.Code
	m.Theme = s.Theme
	m.Phone = s.Phone
	m.PhoneBank = s.PhoneBank
	m.ChunkSize = s.ChunkSize
	m.SignupOpen = s.SignupOpen
	m.UnderAttack = s.UnderAttack
}

// StoreModelFromDomain creates a new persistence model from a domain Store
func StoreModelFromDomain(s *shop.Store) *StoreModel {
	m := &StoreModel{}
	m.FromDomain(s)
	return m
}

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	AggregateModel
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	Name          string             `gorm:"type:varchar(200);not null"`
	Subtitle      string             `gorm:"type:varchar(200)"`
	Code          string             `gorm:"type:varchar(100);not null;uniqueIndex"`
	ListPrice     decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	SellingPrice  decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	Status        shop.ProductStatus `gorm:"type:varchar(20);not null;default:'ENABLED';index"`
	StockStatus   shop.StockStatus   `gorm:"type:varchar(20);not null;default:'SOLD_OUT'"`
	StockQuantity int                `gorm:"not null;default:0"`
	Position      int                `gorm:"not null;default:0"`
	Description   string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *shop.Product {
	return &shop.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StoreID:           m.StoreID,
		Name:              m.Name,
		Subtitle:          m.Subtitle,
		Code:              m.Code,
		ListPrice:         m.ListPrice,
		SellingPrice:      m.SellingPrice,
		Status:            m.Status,
		StockStatus:       m.StockStatus,
		StockQuantity:     m.StockQuantity,
		Position:          m.Position,
		Description:       m.Description,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *shop.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.StoreID = p.StoreID
	m.Name = p.Name
	m.Subtitle = p.Subtitle
	m.Code = p.Code
	m.ListPrice = p.ListPrice
	m.SellingPrice = p.SellingPrice
	m.Status = p.Status
	m.StockStatus = p.StockStatus
	m.StockQuantity = p.StockQuantity
	m.Position = p.Position
	m.Description = p.Description
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *shop.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
