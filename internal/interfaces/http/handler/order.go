package handler

import (
	"github.com/gin-gonic/gin"
	shopapp "github.com/pincoin/backend/internal/application/shop"
)

// OrderHandler handles order ledger API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *shopapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *shopapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.DELETE("/:id", h.Delete)
		orders.GET("/no/:orderNo", h.GetByOrderNo)
		orders.POST("/:id/payments", h.RecordPayment)
		orders.DELETE("/:id/payments/:paymentId", h.RemovePayment)
		orders.GET("/:id/payments/proposal", h.ProposePayment)
		orders.POST("/:id/transition", h.Transition)
		orders.POST("/:id/refunds", h.CreateRefund)
		orders.GET("/:id/refunds", h.ListRefunds)
		orders.POST("/:id/suspicious", h.MarkSuspicious)
	}
}

// Create creates a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req shopapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID retrieves an order by ID
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByOrderNo retrieves an order by its external order number
func (h *OrderHandler) GetByOrderNo(c *gin.Context) {
	orderNo, ok := parseUUIDParam(c, "orderNo")
	if !ok {
		h.BadRequest(c, "Invalid order number format")
		return
	}

	order, err := h.orderService.GetByOrderNo(c.Request.Context(), orderNo)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List retrieves orders with filtering and pagination
func (h *OrderHandler) List(c *gin.Context) {
	var filter shopapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// RecordPayment records an incoming payment against an order
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req shopapp.RecordOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RemovePayment soft-deletes a payment row
func (h *OrderHandler) RemovePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}
	paymentID, ok := parseUUIDParam(c, "paymentId")
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	order, err := h.orderService.RemovePayment(c.Request.Context(), id, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ProposePayment suggests the next payment amount for an order
func (h *OrderHandler) ProposePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	proposal, err := h.orderService.ProposePayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, proposal)
}

// Transition moves an order to a new status
func (h *OrderHandler) Transition(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req shopapp.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// CreateRefund opens a refund child order
func (h *OrderHandler) CreateRefund(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req shopapp.CreateRefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	refund, err := h.orderService.CreateRefund(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, refund)
}

// ListRefunds retrieves refund child orders of an order
func (h *OrderHandler) ListRefunds(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	refunds, err := h.orderService.ListRefunds(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, refunds)
}

// MarkSuspicious flags an order for manual review
func (h *OrderHandler) MarkSuspicious(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.MarkSuspicious(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete soft-deletes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
