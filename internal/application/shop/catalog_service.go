package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/pincoin/backend/internal/domain/shop"
)

// CatalogService handles store and product catalog operations
type CatalogService struct {
	storeRepo   shop.StoreRepository
	productRepo shop.ProductRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(storeRepo shop.StoreRepository, productRepo shop.ProductRepository) *CatalogService {
	return &CatalogService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

// CreateStore creates a new store
func (s *CatalogService) CreateStore(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	if _, err := s.storeRepo.FindByCode(ctx, req.Code); err == nil {
		return nil, shared.ErrAlreadyExists
	}

	store, err := shop.NewStore(req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	if req.Theme != "" {
		store.Theme = req.Theme
	}
	store.UpdateContact(req.Phone, req.PhoneBank)
	if req.ChunkSize > 0 {
		store.ChunkSize = req.ChunkSize
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	response := ToStoreResponse(store)
	return &response, nil
}

// GetStore retrieves a store by ID
func (s *CatalogService) GetStore(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	response := ToStoreResponse(store)
	return &response, nil
}

// GetStoreByCode retrieves a store by its slug
func (s *CatalogService) GetStoreByCode(ctx context.Context, code string) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToStoreResponse(store)
	return &response, nil
}

// ListStores retrieves stores
func (s *CatalogService) ListStores(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToStoreResponses(stores), nil
}

// UpdateStore applies a partial update to a store
func (s *CatalogService) UpdateStore(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Theme != nil {
		store.Theme = *req.Theme
	}
	phone := store.Phone
	phoneBank := store.PhoneBank
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.PhoneBank != nil {
		phoneBank = *req.PhoneBank
	}
	store.UpdateContact(phone, phoneBank)
	if req.ChunkSize != nil && *req.ChunkSize > 0 {
		store.ChunkSize = *req.ChunkSize
	}
	if req.SignupOpen != nil {
		if *req.SignupOpen {
			store.OpenSignup()
		} else {
			store.CloseSignup()
		}
	}
	if req.UnderAttack != nil {
		store.SetUnderAttack(*req.UnderAttack)
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	response := ToStoreResponse(store)
	return &response, nil
}

// DeleteStore soft-deletes a store
func (s *CatalogService) DeleteStore(ctx context.Context, storeID uuid.UUID) error {
	return s.storeRepo.Delete(ctx, storeID)
}

// CreateProduct creates a new catalog product. New products start sold out
// until vouchers are imported for them.
func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.productRepo.FindByCode(ctx, req.Code); err == nil {
		return nil, shared.ErrAlreadyExists
	}

	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, err
	}

	listPrice := valueobject.NewMoneyKRW(req.ListPrice)
	sellingPrice := valueobject.NewMoneyKRW(req.SellingPrice)

	product, err := shop.NewProduct(req.StoreID, req.Name, req.Subtitle, req.Code, listPrice, sellingPrice)
	if err != nil {
		return nil, err
	}
	product.Position = req.Position
	product.Description = req.Description

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetProductByCode retrieves a product by its slug
func (s *CatalogService) GetProductByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// ListProducts retrieves products with filtering and pagination
func (s *CatalogService) ListProducts(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := s.buildFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// UpdateProduct applies a partial update to a product
func (s *CatalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Subtitle != nil {
		product.Subtitle = *req.Subtitle
	}
	if req.ListPrice != nil || req.SellingPrice != nil {
		listPrice := product.ListPrice
		sellingPrice := product.SellingPrice
		if req.ListPrice != nil {
			listPrice = *req.ListPrice
		}
		if req.SellingPrice != nil {
			sellingPrice = *req.SellingPrice
		}
		if err := product.UpdatePricing(valueobject.NewMoneyKRW(listPrice), valueobject.NewMoneyKRW(sellingPrice)); err != nil {
			return nil, err
		}
	}
	if req.Position != nil {
		product.Position = *req.Position
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// EnableProduct puts the product on sale
func (s *CatalogService) EnableProduct(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.setProductStatus(ctx, productID, true)
}

// DisableProduct takes the product off sale
func (s *CatalogService) DisableProduct(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.setProductStatus(ctx, productID, false)
}

func (s *CatalogService) setProductStatus(ctx context.Context, productID uuid.UUID, enabled bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if enabled {
		product.Enable()
	} else {
		product.Disable()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// DeleteProduct soft-deletes a product
func (s *CatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

func (s *CatalogService) buildFilter(filter ProductListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:           filter.Page,
		PageSize:       filter.PageSize,
		OrderBy:        filter.OrderBy,
		OrderDir:       filter.OrderDir,
		Search:         filter.Search,
		IncludeDeleted: filter.IncludeDeleted,
		Filters:        make(map[string]interface{}),
	}

	if filter.StoreID != nil {
		domainFilter.Filters["store_id"] = *filter.StoreID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.StockStatus != nil {
		domainFilter.Filters["stock_status"] = string(*filter.StockStatus)
	}

	return domainFilter
}
