package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// BankAccount represents a corporate bank account used for supplier payouts.
// PayPal is not a payout channel, so it is absent here.
type BankAccount string

const (
	BankAccountKB      BankAccount = "KB"
	BankAccountNH      BankAccount = "NH"
	BankAccountShinhan BankAccount = "SHINHAN"
	BankAccountWoori   BankAccount = "WOORI"
	BankAccountIBK     BankAccount = "IBK"
)

// IsValid checks if the bank account is a known payout account
func (a BankAccount) IsValid() bool {
	switch a {
	case BankAccountKB, BankAccountNH, BankAccountShinhan, BankAccountWoori, BankAccountIBK:
		return true
	}
	return false
}

// String returns the string representation of BankAccount
func (a BankAccount) String() string {
	return string(a)
}

// PurchaseOrderPayment is an outgoing payment against a purchase order
type PurchaseOrderPayment struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID
	Account         BankAccount
	Amount          decimal.Decimal
}

// NewPurchaseOrderPayment creates a payment row for a purchase order
func NewPurchaseOrderPayment(purchaseOrderID uuid.UUID, account BankAccount, amount valueobject.Money) (*PurchaseOrderPayment, error) {
	if !account.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Unknown bank account")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &PurchaseOrderPayment{
		BaseEntity:      shared.NewBaseEntity(),
		PurchaseOrderID: purchaseOrderID,
		Account:         account,
		Amount:          amount.Amount(),
	}, nil
}

// PurchaseOrder represents a supplier purchase order aggregate root
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	Title       string
	Content     string
	BankAccount string // supplier account, free-form as written on the invoice
	Amount      decimal.Decimal
	Currency    valueobject.Currency
	Paid        bool
	Payments    []PurchaseOrderPayment
}

// NewPurchaseOrder creates a new unpaid purchase order
func NewPurchaseOrder(title, content, bankAccount string, amount valueobject.Money) (*PurchaseOrder, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Purchase order amount must be positive")
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Content:           content,
		BankAccount:       bankAccount,
		Amount:            amount.Amount(),
		Currency:          amount.Currency(),
		Paid:              false,
		Payments:          make([]PurchaseOrderPayment, 0),
	}, nil
}

// RecordPayment appends an outgoing payment to the purchase order
func (po *PurchaseOrder) RecordPayment(account BankAccount, amount valueobject.Money) (*PurchaseOrderPayment, error) {
	payment, err := NewPurchaseOrderPayment(po.ID, account, amount)
	if err != nil {
		return nil, err
	}

	po.Payments = append(po.Payments, *payment)
	po.UpdatedAt = time.Now()

	return payment, nil
}

// RemovePayment soft-deletes a payment row
func (po *PurchaseOrder) RemovePayment(paymentID uuid.UUID) error {
	for i := range po.Payments {
		if po.Payments[i].ID == paymentID && !po.Payments[i].IsDeleted() {
			po.Payments[i].SoftDelete()
			po.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// TotalPaid sums the amounts of all non-deleted payments
func (po *PurchaseOrder) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for i := range po.Payments {
		if po.Payments[i].IsDeleted() {
			continue
		}
		total = total.Add(po.Payments[i].Amount)
	}
	return total
}

// OutstandingBalance returns the invoice amount minus all non-deleted payments
func (po *PurchaseOrder) OutstandingBalance() valueobject.Money {
	m, _ := valueobject.NewMoney(po.Amount.Sub(po.TotalPaid()), po.Currency)
	return m
}

// MarkPaid flags the purchase order as settled.
// Requires the recorded payments to cover the invoice amount.
func (po *PurchaseOrder) MarkPaid() error {
	if po.Paid {
		return nil
	}
	if po.TotalPaid().LessThan(po.Amount) {
		return shared.NewDomainError("INSUFFICIENT_PAYMENT", "Recorded payments do not cover the purchase order amount")
	}
	po.Paid = true
	po.UpdatedAt = time.Now()
	return nil
}
