package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/pincoin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStoreRepository implements shop.StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Store, error) {
	var model models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a store by its unique slug
func (r *GormStoreRepository) FindByCode(ctx context.Context, code string) (*shop.Store, error) {
	var model models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("code = ? AND deleted_at IS NULL", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds stores with filtering and pagination
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Store, error) {
	var storeModels []models.StoreModel
	query := r.db.WithContext(ctx).Model(&models.StoreModel{})

	if !filter.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", searchPattern, searchPattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&storeModels).Error; err != nil {
		return nil, err
	}

	stores := make([]shop.Store, len(storeModels))
	for i := range storeModels {
		stores[i] = *storeModels[i].ToDomain()
	}
	return stores, nil
}

// Save persists a store
func (r *GormStoreRepository) Save(ctx context.Context, store *shop.Store) error {
	model := models.StoreModelFromDomain(store)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a store
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.StoreModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormStoreRepository implements shop.StoreRepository
var _ shop.StoreRepository = (*GormStoreRepository)(nil)
