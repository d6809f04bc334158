package handler

import (
	"github.com/gin-gonic/gin"
	shopapp "github.com/pincoin/backend/internal/application/shop"
)

// VoucherHandler handles voucher inventory API endpoints
type VoucherHandler struct {
	BaseHandler
	voucherService *shopapp.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(voucherService *shopapp.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// RegisterRoutes registers voucher routes
func (h *VoucherHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("/import", h.Import)
		vouchers.POST("/allocate", h.Allocate)
		vouchers.GET("", h.List)
		vouchers.GET("/:id", h.GetByID)
		vouchers.DELETE("/:id", h.Delete)
		vouchers.GET("/available/:productId", h.CountAvailable)
		vouchers.POST("/bindings/:id/revoke", h.Revoke)
		vouchers.GET("/bindings/order-product/:orderProductId", h.ListBindings)
	}
}

// Import loads a batch of voucher codes into the pool
func (h *VoucherHandler) Import(c *gin.Context) {
	var req shopapp.ImportVouchersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vouchers, err := h.voucherService.Import(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, vouchers)
}

// Allocate claims vouchers from the pool for an order product
func (h *VoucherHandler) Allocate(c *gin.Context) {
	var req shopapp.AllocateVouchersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bindings, err := h.voucherService.Allocate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bindings)
}

// Revoke marks a binding and its voucher as revoked
func (h *VoucherHandler) Revoke(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid binding ID format")
		return
	}

	binding, err := h.voucherService.Revoke(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, binding)
}

// GetByID retrieves a voucher by ID
func (h *VoucherHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid voucher ID format")
		return
	}

	voucher, err := h.voucherService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, voucher)
}

// List retrieves vouchers with filtering and pagination
func (h *VoucherHandler) List(c *gin.Context) {
	var filter shopapp.VoucherListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vouchers, total, err := h.voucherService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, vouchers, total, page, pageSize)
}

// ListBindings retrieves all bindings of an order product
func (h *VoucherHandler) ListBindings(c *gin.Context) {
	orderProductID, ok := parseUUIDParam(c, "orderProductId")
	if !ok {
		h.BadRequest(c, "Invalid order product ID format")
		return
	}

	bindings, err := h.voucherService.ListBindings(c.Request.Context(), orderProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bindings)
}

// CountAvailable reports the remaining sellable stock of a product
func (h *VoucherHandler) CountAvailable(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	count, err := h.voucherService.CountAvailable(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"product_id": productID, "available": count})
}

// Delete soft-deletes a voucher
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid voucher ID format")
		return
	}

	if err := h.voucherService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
