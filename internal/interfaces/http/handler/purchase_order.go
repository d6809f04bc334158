package handler

import (
	"github.com/gin-gonic/gin"
	shopapp "github.com/pincoin/backend/internal/application/shop"
)

// PurchaseOrderHandler handles supplier purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	purchaseOrderService *shopapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(purchaseOrderService *shopapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchaseOrderService: purchaseOrderService}
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchaseOrders := rg.Group("/purchase-orders")
	{
		purchaseOrders.POST("", h.Create)
		purchaseOrders.GET("", h.List)
		purchaseOrders.GET("/:id", h.GetByID)
		purchaseOrders.DELETE("/:id", h.Delete)
		purchaseOrders.POST("/:id/payments", h.RecordPayment)
		purchaseOrders.DELETE("/:id/payments/:paymentId", h.RemovePayment)
		purchaseOrders.GET("/:id/payments/proposal", h.ProposePayment)
		purchaseOrders.POST("/:id/paid", h.MarkPaid)
	}
}

// Create creates a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req shopapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.purchaseOrderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, po)
}

// GetByID retrieves a purchase order by ID
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.purchaseOrderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// List retrieves purchase orders with filtering and pagination
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter shopapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchaseOrders, total, err := h.purchaseOrderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, purchaseOrders, total, page, pageSize)
}

// RecordPayment records an outgoing payment against a purchase order
func (h *PurchaseOrderHandler) RecordPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req shopapp.RecordPurchaseOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.purchaseOrderService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// RemovePayment soft-deletes a purchase order payment row
func (h *PurchaseOrderHandler) RemovePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}
	paymentID, ok := parseUUIDParam(c, "paymentId")
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	po, err := h.purchaseOrderService.RemovePayment(c.Request.Context(), id, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// ProposePayment suggests the next payout amount for a purchase order
func (h *PurchaseOrderHandler) ProposePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	proposal, err := h.purchaseOrderService.ProposePayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, proposal)
}

// MarkPaid marks a fully covered purchase order as paid
func (h *PurchaseOrderHandler) MarkPaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.purchaseOrderService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// Delete soft-deletes a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	if err := h.purchaseOrderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
