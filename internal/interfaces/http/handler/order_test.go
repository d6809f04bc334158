package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	shopapp "github.com/pincoin/backend/internal/application/shop"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/pincoin/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for order repositories

type mockOrderRepository struct {
	orders    map[uuid.UUID]*shop.Order
	returnErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[uuid.UUID]*shop.Order)}
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Order, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if order, ok := m.orders[id]; ok {
		return order, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockOrderRepository) FindByOrderNo(ctx context.Context, orderNo uuid.UUID) (*shop.Order, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	for _, order := range m.orders {
		if order.OrderNo == orderNo {
			return order, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Order, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	var result []shop.Order
	for _, order := range m.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (m *mockOrderRepository) FindRefundsOf(ctx context.Context, parentID uuid.UUID, filter shared.Filter) ([]shop.Order, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	var result []shop.Order
	for _, order := range m.orders {
		if order.ParentID != nil && *order.ParentID == parentID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *mockOrderRepository) Save(ctx context.Context, order *shop.Order) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	if _, ok := m.orders[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(m.orders)), m.returnErr
}

type mockProductRepository struct {
	products  map[uuid.UUID]*shop.Product
	returnErr error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*shop.Product)}
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Product, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if product, ok := m.products[id]; ok {
		return product, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*shop.Product, error) {
	for _, product := range m.products {
		if product.Code == code {
			return product, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Product, error) {
	var result []shop.Product
	for _, product := range m.products {
		result = append(result, *product)
	}
	return result, nil
}

func (m *mockProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]shop.Product, error) {
	var result []shop.Product
	for _, product := range m.products {
		if product.StoreID == storeID {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (m *mockProductRepository) Save(ctx context.Context, product *shop.Product) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(m.products)), nil
}

// Test helper functions

func setupOrderTestHandler() (*OrderHandler, *mockOrderRepository, *mockProductRepository) {
	gin.SetMode(gin.TestMode)

	orderRepo := newMockOrderRepository()
	productRepo := newMockProductRepository()

	service := shopapp.NewOrderService(orderRepo, productRepo)
	handler := NewOrderHandler(service)

	return handler, orderRepo, productRepo
}

func createHandlerTestProduct(t *testing.T) *shop.Product {
	t.Helper()
	product, err := shop.NewProduct(
		uuid.New(),
		"Culture Land 10000",
		"Instant delivery",
		"cultureland-10000",
		valueobject.NewMoneyKRWFromFloat(10000),
		valueobject.NewMoneyKRWFromFloat(9500),
	)
	require.NoError(t, err)
	require.NoError(t, product.UpdateStock(10))
	return product
}

func createHandlerTestOrder(t *testing.T, product *shop.Product) *shop.Order {
	t.Helper()
	order, err := shop.NewOrder("Hong Gildong", valueobject.KRW, shop.PaymentMethodBankTransfer)
	require.NoError(t, err)
	_, err = order.AddProduct(
		product.ID,
		product.Name,
		product.Subtitle,
		product.Code,
		valueobject.NewMoneyKRW(product.ListPrice),
		valueobject.NewMoneyKRW(product.SellingPrice),
		1,
	)
	require.NoError(t, err)
	return order
}

// Tests

func TestNewOrderHandler(t *testing.T) {
	handler, _, _ := setupOrderTestHandler()
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.orderService)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product

	body, _ := json.Marshal(shopapp.CreateOrderRequest{
		FullName:      "Hong Gildong",
		PaymentMethod: shop.PaymentMethodBankTransfer,
		Items: []shopapp.CreateOrderItemInput{
			{ProductID: product.ID, Quantity: 2},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, orderRepo.orders, 1)
}

func TestOrderHandler_Create_OutOfStock(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	require.NoError(t, product.UpdateStock(0))
	productRepo.products[product.ID] = product

	body, _ := json.Marshal(shopapp.CreateOrderRequest{
		FullName:      "Hong Gildong",
		PaymentMethod: shop.PaymentMethodBankTransfer,
		Items: []shopapp.CreateOrderItemInput{
			{ProductID: product.ID, Quantity: 1},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "OUT_OF_STOCK", resp.Error.Code)
	assert.Empty(t, orderRepo.orders)
}

func TestOrderHandler_Create_MissingItems(t *testing.T) {
	handler, _, _ := setupOrderTestHandler()

	body, _ := json.Marshal(shopapp.CreateOrderRequest{
		FullName:      "Hong Gildong",
		PaymentMethod: shop.PaymentMethodBankTransfer,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_GetByID_Success(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product
	order := createHandlerTestOrder(t, product)
	orderRepo.orders[order.ID] = order

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: order.ID.String()}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	handler, _, _ := setupOrderTestHandler()

	orderID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: orderID.String()}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_GetByID_InvalidID(t *testing.T) {
	handler, _, _ := setupOrderTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/orders/invalid-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "invalid-uuid"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_List_Success(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product
	for i := 0; i < 3; i++ {
		order := createHandlerTestOrder(t, product)
		orderRepo.orders[order.ID] = order
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/orders?page=1&page_size=20", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
}

func TestOrderHandler_Transition_Illegal(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product
	order := createHandlerTestOrder(t, product)
	orderRepo.orders[order.ID] = order

	body, _ := json.Marshal(shopapp.TransitionOrderRequest{
		Status: shop.OrderStatusShipped,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/orders/"+order.ID.String()+"/transition", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: order.ID.String()}}

	handler.Transition(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ILLEGAL_STATUS_TRANSITION", resp.Error.Code)
	assert.Equal(t, shop.OrderStatusPaymentPending, order.Status)
}

func TestOrderHandler_Transition_Success(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product
	order := createHandlerTestOrder(t, product)
	orderRepo.orders[order.ID] = order

	body, _ := json.Marshal(shopapp.TransitionOrderRequest{
		Status: shop.OrderStatusPaymentCompleted,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/orders/"+order.ID.String()+"/transition", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: order.ID.String()}}

	handler.Transition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, shop.OrderStatusPaymentCompleted, order.Status)
}

func TestOrderHandler_ProposePayment(t *testing.T) {
	handler, orderRepo, productRepo := setupOrderTestHandler()

	product := createHandlerTestProduct(t)
	productRepo.products[product.ID] = product
	order := createHandlerTestOrder(t, product)
	orderRepo.orders[order.ID] = order

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/orders/"+order.ID.String()+"/payments/proposal", nil)
	c.Params = gin.Params{{Key: "id", Value: order.ID.String()}}

	handler.ProposePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "9500", data["amount"])
	assert.Equal(t, "KRW", data["currency"])
}
