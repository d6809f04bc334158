package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shop"
)

// VoucherService handles voucher inventory operations
type VoucherService struct {
	voucherRepo shop.VoucherRepository
	productRepo shop.ProductRepository
}

// NewVoucherService creates a new VoucherService
func NewVoucherService(voucherRepo shop.VoucherRepository, productRepo shop.ProductRepository) *VoucherService {
	return &VoucherService{
		voucherRepo: voucherRepo,
		productRepo: productRepo,
	}
}

// Import uploads a batch of voucher codes for a product. A code that already
// exists for the product, even on a soft-deleted row, rejects the whole
// batch: nothing is written partially.
func (s *VoucherService) Import(ctx context.Context, req ImportVouchersRequest) ([]VoucherResponse, error) {
	seen := make(map[string]struct{}, len(req.Codes))
	vouchers := make([]*shop.Voucher, 0, len(req.Codes))

	for _, code := range req.Codes {
		if _, dup := seen[code]; dup {
			return nil, shared.ErrDuplicateVoucherCode
		}
		seen[code] = struct{}{}

		exists, err := s.voucherRepo.ExistsByProductAndCode(ctx, req.ProductID, code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrDuplicateVoucherCode
		}

		voucher, err := shop.NewVoucher(req.ProductID, code, req.Remarks)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}

	if err := s.voucherRepo.SaveBatch(ctx, vouchers); err != nil {
		return nil, err
	}

	if err := s.syncProductStock(ctx, req.ProductID); err != nil {
		return nil, err
	}

	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = ToVoucherResponse(vouchers[i])
	}
	return responses, nil
}

// Allocate claims vouchers for an order line, one per unit, oldest first.
// Running out of stock mid-batch fails the request; vouchers already
// claimed stay SOLD and bound, visible for manual cleanup.
func (s *VoucherService) Allocate(ctx context.Context, req AllocateVouchersRequest) ([]VoucherBindingResponse, error) {
	bindings := make([]VoucherBindingResponse, 0, req.Quantity)

	for i := 0; i < req.Quantity; i++ {
		binding, err := s.voucherRepo.Allocate(ctx, req.ProductID, req.OrderProductID)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ToVoucherBindingResponse(binding))
	}

	if err := s.syncProductStock(ctx, req.ProductID); err != nil {
		return nil, err
	}

	return bindings, nil
}

// Revoke invalidates a delivered voucher. The operation is idempotent:
// revoking an already revoked binding succeeds without further effect, and
// a revoked voucher never returns to the available pool.
func (s *VoucherService) Revoke(ctx context.Context, bindingID uuid.UUID) (*VoucherBindingResponse, error) {
	binding, err := s.voucherRepo.FindBindingByID(ctx, bindingID)
	if err != nil {
		return nil, err
	}

	if binding.VoucherID != nil {
		voucher, err := s.voucherRepo.FindByID(ctx, *binding.VoucherID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if voucher != nil {
			if err := voucher.Revoke(); err != nil {
				return nil, err
			}
			if err := s.voucherRepo.Save(ctx, voucher); err != nil {
				return nil, err
			}
		}
	}

	binding.MarkRevoked()
	if err := s.voucherRepo.SaveBinding(ctx, binding); err != nil {
		return nil, err
	}

	response := ToVoucherBindingResponse(binding)
	return &response, nil
}

// GetByID retrieves a voucher by ID
func (s *VoucherService) GetByID(ctx context.Context, voucherID uuid.UUID) (*VoucherResponse, error) {
	voucher, err := s.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	response := ToVoucherResponse(voucher)
	return &response, nil
}

// List retrieves vouchers with filtering and pagination
func (s *VoucherService) List(ctx context.Context, filter VoucherListFilter) ([]VoucherResponse, int64, error) {
	domainFilter := s.buildFilter(filter)

	vouchers, err := s.voucherRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.voucherRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToVoucherResponses(vouchers), total, nil
}

// ListBindings retrieves the vouchers delivered on an order line
func (s *VoucherService) ListBindings(ctx context.Context, orderProductID uuid.UUID) ([]VoucherBindingResponse, error) {
	bindings, err := s.voucherRepo.FindBindingsByOrderProduct(ctx, orderProductID)
	if err != nil {
		return nil, err
	}
	return ToVoucherBindingResponses(bindings), nil
}

// CountAvailable counts sellable vouchers for a product
func (s *VoucherService) CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	return s.voucherRepo.CountAvailable(ctx, productID)
}

// Delete soft-deletes a voucher. Its code stays burned for the product.
func (s *VoucherService) Delete(ctx context.Context, voucherID uuid.UUID) error {
	voucher, err := s.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		return err
	}
	if err := s.voucherRepo.Delete(ctx, voucherID); err != nil {
		return err
	}
	return s.syncProductStock(ctx, voucher.ProductID)
}

// syncProductStock refreshes the product's stock counters from the pool
func (s *VoucherService) syncProductStock(ctx context.Context, productID uuid.UUID) error {
	count, err := s.voucherRepo.CountAvailable(ctx, productID)
	if err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Vouchers can be staged before the catalog entry exists.
			return nil
		}
		return err
	}

	if err := product.UpdateStock(int(count)); err != nil {
		return err
	}
	return s.productRepo.Save(ctx, product)
}

func (s *VoucherService) buildFilter(filter VoucherListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
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

	if filter.ProductID != nil {
		domainFilter.Filters["product_id"] = *filter.ProductID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}

	return domainFilter
}
