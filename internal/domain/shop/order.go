package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the payment/fulfilment status of an order
type OrderStatus string

const (
	OrderStatusPaymentPending   OrderStatus = "PAYMENT_PENDING"
	OrderStatusPaymentCompleted OrderStatus = "PAYMENT_COMPLETED"
	OrderStatusUnderReview      OrderStatus = "UNDER_REVIEW"
	OrderStatusPaymentVerified  OrderStatus = "PAYMENT_VERIFIED"
	OrderStatusShipped          OrderStatus = "SHIPPED"
	OrderStatusRefundRequested  OrderStatus = "REFUND_REQUESTED"
	OrderStatusRefundPending    OrderStatus = "REFUND_PENDING"
	OrderStatusRefunded         OrderStatus = "REFUNDED"
	OrderStatusVoided           OrderStatus = "VOIDED"
)

// orderStatusTransitions is the adjacency table of legal status moves.
// REFUNDED and VOIDED are terminal.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPaymentPending:   {OrderStatusPaymentCompleted, OrderStatusVoided},
	OrderStatusPaymentCompleted: {OrderStatusUnderReview, OrderStatusPaymentVerified, OrderStatusVoided},
	OrderStatusUnderReview:      {OrderStatusPaymentVerified, OrderStatusVoided},
	OrderStatusPaymentVerified:  {OrderStatusShipped, OrderStatusVoided},
	OrderStatusShipped:          {OrderStatusRefundRequested},
	OrderStatusRefundRequested:  {OrderStatusRefundPending, OrderStatusRefunded},
	OrderStatusRefundPending:    {OrderStatusRefunded},
	OrderStatusRefunded:         {},
	OrderStatusVoided:           {},
}

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderStatusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return len(orderStatusTransitions[s]) == 0
}

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodEscrow         PaymentMethod = "ESCROW"
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransferPG PaymentMethod = "BANK_TRANSFER_PG"
	PaymentMethodVirtualAccount PaymentMethod = "VIRTUAL_ACCOUNT"
	PaymentMethodPhoneBill      PaymentMethod = "PHONE_BILL"
)

// IsValid checks if the payment method is supported
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodEscrow, PaymentMethodPayPal,
		PaymentMethodCreditCard, PaymentMethodBankTransferPG,
		PaymentMethodVirtualAccount, PaymentMethodPhoneBill:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentAccount represents the bank account a payment arrived on
type PaymentAccount string

const (
	PaymentAccountKB      PaymentAccount = "KB"
	PaymentAccountNH      PaymentAccount = "NH"
	PaymentAccountShinhan PaymentAccount = "SHINHAN"
	PaymentAccountWoori   PaymentAccount = "WOORI"
	PaymentAccountIBK     PaymentAccount = "IBK"
	PaymentAccountPayPal  PaymentAccount = "PAYPAL"
)

// IsValid checks if the account is a known receiving account
func (a PaymentAccount) IsValid() bool {
	switch a {
	case PaymentAccountKB, PaymentAccountNH, PaymentAccountShinhan,
		PaymentAccountWoori, PaymentAccountIBK, PaymentAccountPayPal:
		return true
	}
	return false
}

// String returns the string representation of PaymentAccount
func (a PaymentAccount) String() string {
	return string(a)
}

// OrderProduct is a line item snapshot taken at order time.
// Name, code and prices are copied from the catalog so later catalog edits
// never rewrite order history.
type OrderProduct struct {
	shared.BaseEntity
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	Name         string
	Subtitle     string
	Code         string
	ListPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     int
}

// NewOrderProduct creates a new order line item
func NewOrderProduct(orderID, productID uuid.UUID, name, subtitle, code string, listPrice, sellingPrice valueobject.Money, quantity int) (*OrderProduct, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if sellingPrice.IsNegative() || listPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &OrderProduct{
		BaseEntity:   shared.NewBaseEntity(),
		OrderID:      orderID,
		ProductID:    productID,
		Name:         name,
		Subtitle:     subtitle,
		Code:         code,
		ListPrice:    listPrice.Amount(),
		SellingPrice: sellingPrice.Amount(),
		Quantity:     quantity,
	}, nil
}

// Subtotal returns selling price times quantity
func (p *OrderProduct) Subtotal() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// ListSubtotal returns list price times quantity
func (p *OrderProduct) ListSubtotal() decimal.Decimal {
	return p.ListPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// OrderPayment is a payment received against an order.
// Balance records the running account balance reported by the bank feed.
type OrderPayment struct {
	shared.BaseEntity
	OrderID  uuid.UUID
	Account  PaymentAccount
	Amount   decimal.Decimal
	Balance  decimal.Decimal
	Received time.Time
}

// NewOrderPayment creates a new payment record for an order
func NewOrderPayment(orderID uuid.UUID, account PaymentAccount, amount, balance valueobject.Money, received time.Time) (*OrderPayment, error) {
	if !account.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Unknown payment account")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if received.IsZero() {
		received = time.Now()
	}

	return &OrderPayment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Account:    account,
		Amount:     amount.Amount(),
		Balance:    balance.Amount(),
		Received:   received,
	}, nil
}

// Order represents a customer order aggregate root.
// It tracks line item snapshots, received payments and the status ledger.
type Order struct {
	shared.BaseAggregateRoot
	OrderNo           uuid.UUID // external identifier, unique and immutable
	FullName          string
	UserAgent         string
	IPAddress         string
	PaymentMethod     PaymentMethod
	Currency          valueobject.Currency
	Status            OrderStatus
	ParentID          *uuid.UUID // set on refund orders, references the original
	Message           string
	Suspicious        bool
	Products          []OrderProduct
	Payments          []OrderPayment
	TotalListPrice    decimal.Decimal
	TotalSellingPrice decimal.Decimal
}

// NewOrder creates a new order in PAYMENT_PENDING status
func NewOrder(fullName string, currency valueobject.Currency, method PaymentMethod) (*Order, error) {
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_FULL_NAME", "Customer name cannot be empty")
	}
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Unsupported currency")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNo:           uuid.New(),
		FullName:          fullName,
		PaymentMethod:     method,
		Currency:          currency,
		Status:            OrderStatusPaymentPending,
		Products:          make([]OrderProduct, 0),
		Payments:          make([]OrderPayment, 0),
		TotalListPrice:    decimal.Zero,
		TotalSellingPrice: decimal.Zero,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// NewRefundOrder creates a child order for a refund of this order.
// The child carries the parent's totals and starts in REFUND_REQUESTED.
func (o *Order) NewRefundOrder(message string) (*Order, error) {
	if o.ParentID != nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot create a refund of a refund order")
	}
	if o.IsDeleted() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot create a refund for a deleted order")
	}

	parentID := o.ID
	refund := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNo:           uuid.New(),
		FullName:          o.FullName,
		PaymentMethod:     o.PaymentMethod,
		Currency:          o.Currency,
		Status:            OrderStatusRefundRequested,
		ParentID:          &parentID,
		Message:           message,
		Products:          make([]OrderProduct, 0),
		Payments:          make([]OrderPayment, 0),
		TotalListPrice:    o.TotalListPrice,
		TotalSellingPrice: o.TotalSellingPrice,
	}

	refund.AddDomainEvent(NewOrderCreatedEvent(refund))

	return refund, nil
}

// AddProduct adds a line item snapshot to the order
func (o *Order) AddProduct(productID uuid.UUID, name, subtitle, code string, listPrice, sellingPrice valueobject.Money, quantity int) (*OrderProduct, error) {
	item, err := NewOrderProduct(o.ID, productID, name, subtitle, code, listPrice, sellingPrice, quantity)
	if err != nil {
		return nil, err
	}

	o.Products = append(o.Products, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return item, nil
}

// RemoveProduct soft-deletes a line item and recalculates the totals
func (o *Order) RemoveProduct(itemID uuid.UUID) error {
	for i := range o.Products {
		if o.Products[i].ID == itemID && !o.Products[i].IsDeleted() {
			o.Products[i].SoftDelete()
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RecordPayment appends a received payment to the order ledger.
// There is no cap: payments may exceed the order total, overpayment is
// informational and surfaces as a negative outstanding balance.
func (o *Order) RecordPayment(account PaymentAccount, amount, balance valueobject.Money, received time.Time) (*OrderPayment, error) {
	payment, err := NewOrderPayment(o.ID, account, amount, balance, received)
	if err != nil {
		return nil, err
	}

	o.Payments = append(o.Payments, *payment)
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderPaymentRecordedEvent(o, payment))

	return payment, nil
}

// RemovePayment soft-deletes a payment row; the row stays visible for audit
// but stops counting toward the paid total
func (o *Order) RemovePayment(paymentID uuid.UUID) error {
	for i := range o.Payments {
		if o.Payments[i].ID == paymentID && !o.Payments[i].IsDeleted() {
			o.Payments[i].SoftDelete()
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// TotalPaid sums the amounts of all non-deleted payments
func (o *Order) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Payments {
		if o.Payments[i].IsDeleted() {
			continue
		}
		total = total.Add(o.Payments[i].Amount)
	}
	return total
}

// OutstandingBalance returns the total selling price minus all non-deleted
// payments. With no payments the full total is outstanding; the result is
// negative when the order is overpaid.
func (o *Order) OutstandingBalance() valueobject.Money {
	m, _ := valueobject.NewMoney(o.TotalSellingPrice.Sub(o.TotalPaid()), o.Currency)
	return m
}

// TransitionTo moves the order to the target status if the
// transition is legal; otherwise the status is left untouched
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrIllegalStatusTransition
	}

	from := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, target))

	return nil
}

// MarkSuspicious flags the order for manual review
func (o *Order) MarkSuspicious() {
	o.Suspicious = true
	o.UpdatedAt = time.Now()
}

// IsRefundOrder returns true if this order is a refund child
func (o *Order) IsRefundOrder() bool {
	return o.ParentID != nil
}

// recalculateTotals recomputes the order totals from non-deleted line items
func (o *Order) recalculateTotals() {
	listTotal := decimal.Zero
	sellingTotal := decimal.Zero
	for i := range o.Products {
		if o.Products[i].IsDeleted() {
			continue
		}
		listTotal = listTotal.Add(o.Products[i].ListSubtotal())
		sellingTotal = sellingTotal.Add(o.Products[i].Subtotal())
	}
	o.TotalListPrice = listTotal
	o.TotalSellingPrice = sellingTotal
}
