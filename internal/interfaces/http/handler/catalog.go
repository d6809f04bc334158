package handler

import (
	"github.com/gin-gonic/gin"
	shopapp "github.com/pincoin/backend/internal/application/shop"
)

// CatalogHandler handles store and product API endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *shopapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *shopapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.POST("", h.CreateStore)
		stores.GET("", h.ListStores)
		stores.GET("/:id", h.GetStore)
		stores.PATCH("/:id", h.UpdateStore)
		stores.DELETE("/:id", h.DeleteStore)
		stores.GET("/code/:code", h.GetStoreByCode)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/code/:code", h.GetProductByCode)
		products.POST("/:id/enable", h.EnableProduct)
		products.POST("/:id/disable", h.DisableProduct)
	}
}

// CreateStore creates a new store
func (h *CatalogHandler) CreateStore(c *gin.Context) {
	var req shopapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.catalogService.CreateStore(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, store)
}

// GetStore retrieves a store by ID
func (h *CatalogHandler) GetStore(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.catalogService.GetStore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// GetStoreByCode retrieves a store by its code
func (h *CatalogHandler) GetStoreByCode(c *gin.Context) {
	store, err := h.catalogService.GetStoreByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// UpdateStore applies a partial update to a store
func (h *CatalogHandler) UpdateStore(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	var req shopapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.catalogService.UpdateStore(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// DeleteStore soft-deletes a store
func (h *CatalogHandler) DeleteStore(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	if err := h.catalogService.DeleteStore(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListStores retrieves all stores
func (h *CatalogHandler) ListStores(c *gin.Context) {
	stores, err := h.catalogService.ListStores(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stores)
}

// CreateProduct creates a new product
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req shopapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetProduct retrieves a product by ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// GetProductByCode retrieves a product by its code
func (h *CatalogHandler) GetProductByCode(c *gin.Context) {
	product, err := h.catalogService.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListProducts retrieves products with filtering and pagination
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter shopapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.catalogService.ListProducts(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, products, total, page, pageSize)
}

// UpdateProduct applies a partial update to a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req shopapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// EnableProduct makes a product sellable
func (h *CatalogHandler) EnableProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.catalogService.EnableProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// DisableProduct takes a product off sale
func (h *CatalogHandler) DisableProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.catalogService.DisableProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// DeleteProduct soft-deletes a product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
