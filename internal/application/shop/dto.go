package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// ==================== Order DTOs ====================

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	FullName      string                 `json:"full_name" binding:"required,min=1,max=100"`
	UserAgent     string                 `json:"user_agent"`
	IPAddress     string                 `json:"ip_address"`
	PaymentMethod shop.PaymentMethod     `json:"payment_method" binding:"required"`
	Currency      string                 `json:"currency"`
	Message       string                 `json:"message"`
	Items         []CreateOrderItemInput `json:"items" binding:"required,min=1"`
}

// CreateOrderItemInput references a catalog product; the order line snapshots
// the product's name and prices at creation time.
type CreateOrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// RecordOrderPaymentRequest represents a request to record an incoming payment
type RecordOrderPaymentRequest struct {
	Account  shop.PaymentAccount `json:"account" binding:"required"`
	Amount   decimal.Decimal     `json:"amount" binding:"required"`
	Balance  decimal.Decimal     `json:"balance"`
	Received *time.Time          `json:"received"`
}

// TransitionOrderRequest represents a request to move an order to a new status
type TransitionOrderRequest struct {
	Status shop.OrderStatus `json:"status" binding:"required"`
}

// CreateRefundOrderRequest represents a request to open a refund for an order
type CreateRefundOrderRequest struct {
	Message string `json:"message" binding:"required,min=1,max=500"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Search         string              `form:"search"`
	Status         *shop.OrderStatus   `form:"status"`
	Statuses       []string            `form:"statuses"`
	PaymentMethod  *shop.PaymentMethod `form:"payment_method"`
	Suspicious     *bool               `form:"suspicious"`
	StartDate      *time.Time          `form:"start_date"`
	EndDate        *time.Time          `form:"end_date"`
	IncludeDeleted bool                `form:"include_deleted"`
	Page           int                 `form:"page" binding:"min=0"`
	PageSize       int                 `form:"page_size" binding:"min=0,max=100"`
	OrderBy        string              `form:"order_by"`
	OrderDir       string              `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderProductResponse represents an order line item in API responses
type OrderProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	Name         string          `json:"name"`
	Subtitle     string          `json:"subtitle,omitempty"`
	Code         string          `json:"code"`
	ListPrice    decimal.Decimal `json:"list_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Deleted      bool            `json:"deleted,omitempty"`
}

// OrderPaymentResponse represents a received payment in API responses
type OrderPaymentResponse struct {
	ID       uuid.UUID       `json:"id"`
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Balance  decimal.Decimal `json:"balance"`
	Received time.Time       `json:"received"`
	Deleted  bool            `json:"deleted,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                 uuid.UUID              `json:"id"`
	OrderNo            uuid.UUID              `json:"order_no"`
	FullName           string                 `json:"full_name"`
	PaymentMethod      string                 `json:"payment_method"`
	Currency           string                 `json:"currency"`
	Status             string                 `json:"status"`
	ParentID           *uuid.UUID             `json:"parent_id,omitempty"`
	Message            string                 `json:"message,omitempty"`
	Suspicious         bool                   `json:"suspicious"`
	Products           []OrderProductResponse `json:"products"`
	Payments           []OrderPaymentResponse `json:"payments"`
	TotalListPrice     decimal.Decimal        `json:"total_list_price"`
	TotalSellingPrice  decimal.Decimal        `json:"total_selling_price"`
	TotalPaid          decimal.Decimal        `json:"total_paid"`
	OutstandingBalance decimal.Decimal        `json:"outstanding_balance"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Version            int                    `json:"version"`
}

// OrderListItemResponse represents an order in list API responses
type OrderListItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	OrderNo           uuid.UUID       `json:"order_no"`
	FullName          string          `json:"full_name"`
	PaymentMethod     string          `json:"payment_method"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	Suspicious        bool            `json:"suspicious"`
	TotalSellingPrice decimal.Decimal `json:"total_selling_price"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PaymentProposalResponse represents a suggested payment amount
type PaymentProposalResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ==================== Voucher DTOs ====================

// ImportVouchersRequest represents a bulk voucher upload for a product
type ImportVouchersRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Codes     []string  `json:"codes" binding:"required,min=1"`
	Remarks   string    `json:"remarks"`
}

// AllocateVouchersRequest represents a fulfillment request for an order line
type AllocateVouchersRequest struct {
	OrderProductID uuid.UUID `json:"order_product_id" binding:"required"`
	ProductID      uuid.UUID `json:"product_id" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,min=1"`
}

// VoucherListFilter represents filter options for voucher lists
type VoucherListFilter struct {
	Search         string              `form:"search"`
	ProductID      *uuid.UUID          `form:"product_id"`
	Status         *shop.VoucherStatus `form:"status"`
	IncludeDeleted bool                `form:"include_deleted"`
	Page           int                 `form:"page" binding:"min=0"`
	PageSize       int                 `form:"page_size" binding:"min=0,max=100"`
	OrderBy        string              `form:"order_by"`
	OrderDir       string              `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// VoucherResponse represents a voucher in API responses
type VoucherResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Code      string    `json:"code"`
	Remarks   string    `json:"remarks,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VoucherBindingResponse represents a voucher delivered on an order line
type VoucherBindingResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrderProductID uuid.UUID  `json:"order_product_id"`
	VoucherID      *uuid.UUID `json:"voucher_id,omitempty"`
	Code           string     `json:"code"`
	Revoked        bool       `json:"revoked"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ==================== Purchase Order DTOs ====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Content     string          `json:"content"`
	BankAccount string          `json:"bank_account"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
}

// RecordPurchaseOrderPaymentRequest represents a payout against a purchase order
type RecordPurchaseOrderPaymentRequest struct {
	Account shop.BankAccount `json:"account" binding:"required"`
	Amount  decimal.Decimal  `json:"amount" binding:"required"`
}

// PurchaseOrderListFilter represents filter options for purchase order lists
type PurchaseOrderListFilter struct {
	Search         string     `form:"search"`
	Paid           *bool      `form:"paid"`
	StartDate      *time.Time `form:"start_date"`
	EndDate        *time.Time `form:"end_date"`
	IncludeDeleted bool       `form:"include_deleted"`
	Page           int        `form:"page" binding:"min=0"`
	PageSize       int        `form:"page_size" binding:"min=0,max=100"`
	OrderBy        string     `form:"order_by"`
	OrderDir       string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PurchaseOrderPaymentResponse represents a payout in API responses
type PurchaseOrderPaymentResponse struct {
	ID      uuid.UUID       `json:"id"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Deleted bool            `json:"deleted,omitempty"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID                 uuid.UUID                      `json:"id"`
	Title              string                         `json:"title"`
	Content            string                         `json:"content,omitempty"`
	BankAccount        string                         `json:"bank_account,omitempty"`
	Amount             decimal.Decimal                `json:"amount"`
	Currency           string                         `json:"currency"`
	Paid               bool                           `json:"paid"`
	Payments           []PurchaseOrderPaymentResponse `json:"payments"`
	TotalPaid          decimal.Decimal                `json:"total_paid"`
	OutstandingBalance decimal.Decimal                `json:"outstanding_balance"`
	CreatedAt          time.Time                      `json:"created_at"`
	UpdatedAt          time.Time                      `json:"updated_at"`
	Version            int                            `json:"version"`
}

// ==================== Catalog DTOs ====================

// CreateProductRequest represents a request to create a catalog product
type CreateProductRequest struct {
	StoreID      uuid.UUID       `json:"store_id" binding:"required"`
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Subtitle     string          `json:"subtitle"`
	Code         string          `json:"code" binding:"required,min=1,max=100"`
	ListPrice    decimal.Decimal `json:"list_price" binding:"required"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
	Position     int             `json:"position"`
	Description  string          `json:"description"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Subtitle     *string          `json:"subtitle"`
	ListPrice    *decimal.Decimal `json:"list_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Position     *int             `json:"position"`
	Description  *string          `json:"description"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search         string              `form:"search"`
	StoreID        *uuid.UUID          `form:"store_id"`
	Status         *shop.ProductStatus `form:"status"`
	StockStatus    *shop.StockStatus   `form:"stock_status"`
	IncludeDeleted bool                `form:"include_deleted"`
	Page           int                 `form:"page" binding:"min=0"`
	PageSize       int                 `form:"page_size" binding:"min=0,max=100"`
	OrderBy        string              `form:"order_by"`
	OrderDir       string              `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	StoreID       uuid.UUID       `json:"store_id"`
	Name          string          `json:"name"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Code          string          `json:"code"`
	ListPrice     decimal.Decimal `json:"list_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Status        string          `json:"status"`
	StockStatus   string          `json:"stock_status"`
	StockQuantity int             `json:"stock_quantity"`
	Position      int             `json:"position"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateStoreRequest represents a request to create a store
type CreateStoreRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Code      string `json:"code" binding:"required,min=1,max=100"`
	Theme     string `json:"theme"`
	Phone     string `json:"phone"`
	PhoneBank string `json:"phone_bank"`
	ChunkSize int    `json:"chunk_size"`
}

// UpdateStoreRequest represents a partial store update. Nil fields are untouched.
type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Theme       *string `json:"theme"`
	Phone       *string `json:"phone"`
	PhoneBank   *string `json:"phone_bank"`
	ChunkSize   *int    `json:"chunk_size"`
	SignupOpen  *bool   `json:"signup_open"`
	UnderAttack *bool   `json:"under_attack"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Theme       string    `json:"theme"`
	Phone       string    `json:"phone,omitempty"`
	PhoneBank   string    `json:"phone_bank,omitempty"`
	ChunkSize   int       `json:"chunk_size"`
	SignupOpen  bool      `json:"signup_open"`
	UnderAttack bool      `json:"under_attack"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ==================== Response Mappers ====================

// ToOrderProductResponse converts a domain OrderProduct to a response DTO
func ToOrderProductResponse(p *shop.OrderProduct) OrderProductResponse {
	return OrderProductResponse{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Name:         p.Name,
		Subtitle:     p.Subtitle,
		Code:         p.Code,
		ListPrice:    p.ListPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		Subtotal:     p.Subtotal(),
		Deleted:      p.IsDeleted(),
	}
}

// ToOrderPaymentResponse converts a domain OrderPayment to a response DTO
func ToOrderPaymentResponse(p *shop.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		ID:       p.ID,
		Account:  string(p.Account),
		Amount:   p.Amount,
		Balance:  p.Balance,
		Received: p.Received,
		Deleted:  p.IsDeleted(),
	}
}

// ToOrderResponse converts a domain Order to a response DTO
func ToOrderResponse(order *shop.Order) OrderResponse {
	products := make([]OrderProductResponse, len(order.Products))
	for i := range order.Products {
		products[i] = ToOrderProductResponse(&order.Products[i])
	}

	payments := make([]OrderPaymentResponse, len(order.Payments))
	for i := range order.Payments {
		payments[i] = ToOrderPaymentResponse(&order.Payments[i])
	}

	return OrderResponse{
		ID:                 order.ID,
		OrderNo:            order.OrderNo,
		FullName:           order.FullName,
		PaymentMethod:      string(order.PaymentMethod),
		Currency:           string(order.Currency),
		Status:             string(order.Status),
		ParentID:           order.ParentID,
		Message:            order.Message,
		Suspicious:         order.Suspicious,
		Products:           products,
		Payments:           payments,
		TotalListPrice:     order.TotalListPrice,
		TotalSellingPrice:  order.TotalSellingPrice,
		TotalPaid:          order.TotalPaid(),
		OutstandingBalance: order.OutstandingBalance().Amount(),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		Version:            order.Version,
	}
}

// ToOrderListItemResponse converts a domain Order to a list item DTO
func ToOrderListItemResponse(order *shop.Order) OrderListItemResponse {
	return OrderListItemResponse{
		ID:                order.ID,
		OrderNo:           order.OrderNo,
		FullName:          order.FullName,
		PaymentMethod:     string(order.PaymentMethod),
		Currency:          string(order.Currency),
		Status:            string(order.Status),
		Suspicious:        order.Suspicious,
		TotalSellingPrice: order.TotalSellingPrice,
		CreatedAt:         order.CreatedAt,
	}
}

// ToOrderListItemResponses converts domain Orders to list item DTOs
func ToOrderListItemResponses(orders []shop.Order) []OrderListItemResponse {
	responses := make([]OrderListItemResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderListItemResponse(&orders[i])
	}
	return responses
}

// ToPaymentProposalResponse converts a domain PaymentProposal to a response DTO
func ToPaymentProposalResponse(proposal shop.PaymentProposal) PaymentProposalResponse {
	return PaymentProposalResponse{
		Amount:   proposal.Amount.Amount(),
		Currency: string(proposal.Amount.Currency()),
	}
}

// ToVoucherResponse converts a domain Voucher to a response DTO
func ToVoucherResponse(v *shop.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Code:      v.Code,
		Remarks:   v.Remarks,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToVoucherResponses converts domain Vouchers to response DTOs
func ToVoucherResponses(vouchers []shop.Voucher) []VoucherResponse {
	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = ToVoucherResponse(&vouchers[i])
	}
	return responses
}

// ToVoucherBindingResponse converts a domain binding to a response DTO
func ToVoucherBindingResponse(b *shop.OrderProductVoucher) VoucherBindingResponse {
	return VoucherBindingResponse{
		ID:             b.ID,
		OrderProductID: b.OrderProductID,
		VoucherID:      b.VoucherID,
		Code:           b.Code,
		Revoked:        b.Revoked,
		CreatedAt:      b.CreatedAt,
	}
}

// ToVoucherBindingResponses converts domain bindings to response DTOs
func ToVoucherBindingResponses(bindings []shop.OrderProductVoucher) []VoucherBindingResponse {
	responses := make([]VoucherBindingResponse, len(bindings))
	for i := range bindings {
		responses[i] = ToVoucherBindingResponse(&bindings[i])
	}
	return responses
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder to a response DTO
func ToPurchaseOrderResponse(po *shop.PurchaseOrder) PurchaseOrderResponse {
	payments := make([]PurchaseOrderPaymentResponse, len(po.Payments))
	for i := range po.Payments {
		payments[i] = PurchaseOrderPaymentResponse{
			ID:      po.Payments[i].ID,
			Account: string(po.Payments[i].Account),
			Amount:  po.Payments[i].Amount,
			Deleted: po.Payments[i].IsDeleted(),
		}
	}

	return PurchaseOrderResponse{
		ID:                 po.ID,
		Title:              po.Title,
		Content:            po.Content,
		BankAccount:        po.BankAccount,
		Amount:             po.Amount,
		Currency:           string(po.Currency),
		Paid:               po.Paid,
		Payments:           payments,
		TotalPaid:          po.TotalPaid(),
		OutstandingBalance: po.OutstandingBalance().Amount(),
		CreatedAt:          po.CreatedAt,
		UpdatedAt:          po.UpdatedAt,
		Version:            po.Version,
	}
}

// ToPurchaseOrderResponses converts domain PurchaseOrders to response DTOs
func ToPurchaseOrderResponses(purchaseOrders []shop.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(purchaseOrders))
	for i := range purchaseOrders {
		responses[i] = ToPurchaseOrderResponse(&purchaseOrders[i])
	}
	return responses
}

// ToProductResponse converts a domain Product to a response DTO
func ToProductResponse(p *shop.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		Subtitle:      p.Subtitle,
		Code:          p.Code,
		ListPrice:     p.ListPrice,
		SellingPrice:  p.SellingPrice,
		Status:        string(p.Status),
		StockStatus:   string(p.StockStatus),
		StockQuantity: p.StockQuantity,
		Position:      p.Position,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponses converts domain Products to response DTOs
func ToProductResponses(products []shop.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToStoreResponse converts a domain Store to a response DTO
func ToStoreResponse(s *shop.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Theme:       s.Theme,
		Phone:       s.Phone,
		PhoneBank:   s.PhoneBank,
		ChunkSize:   s.ChunkSize,
		SignupOpen:  s.SignupOpen,
		UnderAttack: s.UnderAttack,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStoreResponses converts domain Stores to response DTOs
func ToStoreResponses(stores []shop.Store) []StoreResponse {
	responses := make([]StoreResponse, len(stores))
	for i := range stores {
		responses[i] = ToStoreResponse(&stores[i])
	}
	return responses
}
