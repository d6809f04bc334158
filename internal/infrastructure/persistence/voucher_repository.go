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

// defaultAllocateMaxAttempts bounds the claim retry loop when concurrent
// allocations race for the same voucher rows.
const defaultAllocateMaxAttempts = 3

// GormVoucherRepository implements shop.VoucherRepository using GORM
type GormVoucherRepository struct {
	db                  *gorm.DB
	allocateMaxAttempts int
}

// NewGormVoucherRepository creates a new GormVoucherRepository
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db, allocateMaxAttempts: defaultAllocateMaxAttempts}
}

// NewGormVoucherRepositoryWithAttempts creates a repository with a custom
// allocation retry budget
func NewGormVoucherRepositoryWithAttempts(db *gorm.DB, maxAttempts int) *GormVoucherRepository {
	if maxAttempts <= 0 {
		maxAttempts = defaultAllocateMaxAttempts
	}
	return &GormVoucherRepository{db: db, allocateMaxAttempts: maxAttempts}
}

// FindByID finds a voucher by its ID
func (r *GormVoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Voucher, error) {
	var model models.VoucherModel
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

// FindAll finds vouchers with filtering and pagination
func (r *GormVoucherRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Voucher, error) {
	var voucherModels []models.VoucherModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.VoucherModel{}), filter)

	if err := query.Find(&voucherModels).Error; err != nil {
		return nil, err
	}

	vouchers := make([]shop.Voucher, len(voucherModels))
	for i := range voucherModels {
		vouchers[i] = *voucherModels[i].ToDomain()
	}
	return vouchers, nil
}

// ExistsByProductAndCode reports whether a (product, code) pair exists.
// Soft-deleted rows count: a retired code stays burned for its product.
func (r *GormVoucherRepository) ExistsByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VoucherModel{}).
		Where("product_id = ? AND code = ?", productID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountAvailable counts PURCHASED vouchers for a product
func (r *GormVoucherRepository) CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VoucherModel{}).
		Where("product_id = ? AND status = ? AND deleted_at IS NULL", productID, shop.VoucherStatusPurchased).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a voucher
func (r *GormVoucherRepository) Save(ctx context.Context, voucher *shop.Voucher) error {
	model := models.VoucherModelFromDomain(voucher)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveBatch persists vouchers atomically; any failure rolls back the batch
func (r *GormVoucherRepository) SaveBatch(ctx context.Context, vouchers []*shop.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, voucher := range vouchers {
			model := models.VoucherModelFromDomain(voucher)
			if err := tx.Save(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Allocate atomically claims the oldest PURCHASED voucher for the product,
// marks it SOLD and binds it to the order product.
//
// The claim is a conditional update keyed on the current status: if another
// transaction wins the row between select and update, zero rows are affected
// and the next candidate is tried. After allocateMaxAttempts losses the
// product is treated as out of stock.
func (r *GormVoucherRepository) Allocate(ctx context.Context, productID, orderProductID uuid.UUID) (*shop.OrderProductVoucher, error) {
	var binding *shop.OrderProductVoucher

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for attempt := 0; attempt < r.allocateMaxAttempts; attempt++ {
			var model models.VoucherModel
			if err := tx.
				Where("product_id = ? AND status = ? AND deleted_at IS NULL", productID, shop.VoucherStatusPurchased).
				Order("created_at ASC, id ASC").
				First(&model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return shared.ErrOutOfStock
				}
				return err
			}

			result := tx.Model(&models.VoucherModel{}).
				Where("id = ? AND status = ?", model.ID, shop.VoucherStatusPurchased).
				Updates(map[string]interface{}{
					"status":     shop.VoucherStatusSold,
					"updated_at": time.Now(),
					"version":    gorm.Expr("version + 1"),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Lost the race for this row; try the next candidate.
				continue
			}

			voucher := model.ToDomain()
			voucher.Status = shop.VoucherStatusSold

			b, err := shop.NewOrderProductVoucher(orderProductID, voucher)
			if err != nil {
				return err
			}
			if err := tx.Create(models.OrderProductVoucherModelFromDomain(b)).Error; err != nil {
				return err
			}

			binding = b
			return nil
		}
		return shared.ErrOutOfStock
	})
	if err != nil {
		return nil, err
	}
	return binding, nil
}

// FindBindingByID finds a voucher binding by its ID
func (r *GormVoucherRepository) FindBindingByID(ctx context.Context, id uuid.UUID) (*shop.OrderProductVoucher, error) {
	var model models.OrderProductVoucherModel
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

// FindBindingsByOrderProduct finds bindings for an order line item
func (r *GormVoucherRepository) FindBindingsByOrderProduct(ctx context.Context, orderProductID uuid.UUID) ([]shop.OrderProductVoucher, error) {
	var bindingModels []models.OrderProductVoucherModel
	if err := r.db.WithContext(ctx).
		Where("order_product_id = ? AND deleted_at IS NULL", orderProductID).
		Order("created_at ASC").
		Find(&bindingModels).Error; err != nil {
		return nil, err
	}

	bindings := make([]shop.OrderProductVoucher, len(bindingModels))
	for i := range bindingModels {
		bindings[i] = *bindingModels[i].ToDomain()
	}
	return bindings, nil
}

// SaveBinding persists a voucher binding
func (r *GormVoucherRepository) SaveBinding(ctx context.Context, binding *shop.OrderProductVoucher) error {
	model := models.OrderProductVoucherModelFromDomain(binding)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a voucher
func (r *GormVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.VoucherModel{}).
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

// Count counts vouchers matching the filter
func (r *GormVoucherRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.VoucherModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormVoucherRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

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

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormVoucherRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if !filter.IncludeDeleted {
		query = query.Where("vouchers.deleted_at IS NULL")
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR remarks LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormVoucherRepository implements shop.VoucherRepository
var _ shop.VoucherRepository = (*GormVoucherRepository)(nil)
