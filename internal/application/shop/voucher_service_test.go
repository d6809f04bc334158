package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVoucherRepository is a mock implementation of VoucherRepository
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Voucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ExistsByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, productID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoucherRepository) CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoucherRepository) Save(ctx context.Context, voucher *shop.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) SaveBatch(ctx context.Context, vouchers []*shop.Voucher) error {
	args := m.Called(ctx, vouchers)
	return args.Error(0)
}

func (m *MockVoucherRepository) Allocate(ctx context.Context, productID, orderProductID uuid.UUID) (*shop.OrderProductVoucher, error) {
	args := m.Called(ctx, productID, orderProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.OrderProductVoucher), args.Error(1)
}

func (m *MockVoucherRepository) FindBindingByID(ctx context.Context, id uuid.UUID) (*shop.OrderProductVoucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.OrderProductVoucher), args.Error(1)
}

func (m *MockVoucherRepository) FindBindingsByOrderProduct(ctx context.Context, orderProductID uuid.UUID) ([]shop.OrderProductVoucher, error) {
	args := m.Called(ctx, orderProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.OrderProductVoucher), args.Error(1)
}

func (m *MockVoucherRepository) SaveBinding(ctx context.Context, binding *shop.OrderProductVoucher) error {
	args := m.Called(ctx, binding)
	return args.Error(0)
}

func (m *MockVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVoucherRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func createTestVoucher(code string) *shop.Voucher {
	voucher, _ := shop.NewVoucher(testProductID, code, "")
	return voucher
}

func createTestBinding(voucher *shop.Voucher) *shop.OrderProductVoucher {
	binding, _ := shop.NewOrderProductVoucher(uuid.New(), voucher)
	return binding
}

func TestVoucherService_Import(t *testing.T) {
	t.Run("imports a clean batch and refreshes stock", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		productRepo := new(MockProductRepository)
		service := NewVoucherService(voucherRepo, productRepo)
		ctx := context.Background()

		voucherRepo.On("ExistsByProductAndCode", ctx, testProductID, mock.AnythingOfType("string")).Return(false, nil)
		voucherRepo.On("SaveBatch", ctx, mock.AnythingOfType("[]*shop.Voucher")).Return(nil)
		voucherRepo.On("CountAvailable", ctx, testProductID).Return(int64(2), nil)
		productRepo.On("FindByID", ctx, testProductID).Return(createTestProduct(), nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*shop.Product")).Return(nil)

		result, err := service.Import(ctx, ImportVouchersRequest{
			ProductID: testProductID,
			Codes:     []string{"PIN-0001", "PIN-0002"},
		})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "PURCHASED", result[0].Status)
		voucherRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects a code already present for the product", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		voucherRepo.On("ExistsByProductAndCode", ctx, testProductID, "PIN-0001").Return(true, nil)

		_, err := service.Import(ctx, ImportVouchersRequest{
			ProductID: testProductID,
			Codes:     []string{"PIN-0001"},
		})

		assert.ErrorIs(t, err, shared.ErrDuplicateVoucherCode)
		voucherRepo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicates inside the batch before any write", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		voucherRepo.On("ExistsByProductAndCode", ctx, testProductID, "PIN-0001").Return(false, nil)

		_, err := service.Import(ctx, ImportVouchersRequest{
			ProductID: testProductID,
			Codes:     []string{"PIN-0001", "PIN-0001"},
		})

		assert.ErrorIs(t, err, shared.ErrDuplicateVoucherCode)
		voucherRepo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
	})
}

func TestVoucherService_Allocate(t *testing.T) {
	t.Run("claims one voucher per unit", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		productRepo := new(MockProductRepository)
		service := NewVoucherService(voucherRepo, productRepo)
		ctx := context.Background()

		orderProductID := uuid.New()
		first := createTestVoucher("PIN-0001")
		second := createTestVoucher("PIN-0002")

		voucherRepo.On("Allocate", ctx, testProductID, orderProductID).
			Return(createTestBinding(first), nil).Once()
		voucherRepo.On("Allocate", ctx, testProductID, orderProductID).
			Return(createTestBinding(second), nil).Once()
		voucherRepo.On("CountAvailable", ctx, testProductID).Return(int64(0), nil)
		productRepo.On("FindByID", ctx, testProductID).Return(createTestProduct(), nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*shop.Product")).Return(nil)

		result, err := service.Allocate(ctx, AllocateVouchersRequest{
			OrderProductID: orderProductID,
			ProductID:      testProductID,
			Quantity:       2,
		})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "PIN-0001", result[0].Code)
		assert.Equal(t, "PIN-0002", result[1].Code)
		voucherRepo.AssertExpectations(t)
	})

	t.Run("propagates out of stock", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		orderProductID := uuid.New()
		voucherRepo.On("Allocate", ctx, testProductID, orderProductID).
			Return(nil, shared.ErrOutOfStock)

		_, err := service.Allocate(ctx, AllocateVouchersRequest{
			OrderProductID: orderProductID,
			ProductID:      testProductID,
			Quantity:       1,
		})

		assert.ErrorIs(t, err, shared.ErrOutOfStock)
	})
}

func TestVoucherService_Revoke(t *testing.T) {
	t.Run("revokes the voucher and the binding", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		voucher := createTestVoucher("PIN-0001")
		require.NoError(t, voucher.MarkSold())
		binding := createTestBinding(voucher)

		voucherRepo.On("FindBindingByID", ctx, binding.ID).Return(binding, nil)
		voucherRepo.On("FindByID", ctx, voucher.ID).Return(voucher, nil)
		voucherRepo.On("Save", ctx, voucher).Return(nil)
		voucherRepo.On("SaveBinding", ctx, binding).Return(nil)

		result, err := service.Revoke(ctx, binding.ID)

		require.NoError(t, err)
		assert.True(t, result.Revoked)
		assert.Equal(t, shop.VoucherStatusRevoked, voucher.Status)
		voucherRepo.AssertExpectations(t)
	})

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		voucher := createTestVoucher("PIN-0001")
		require.NoError(t, voucher.MarkSold())
		require.NoError(t, voucher.Revoke())
		binding := createTestBinding(voucher)
		binding.MarkRevoked()

		voucherRepo.On("FindBindingByID", ctx, binding.ID).Return(binding, nil)
		voucherRepo.On("FindByID", ctx, voucher.ID).Return(voucher, nil)
		voucherRepo.On("Save", ctx, voucher).Return(nil)
		voucherRepo.On("SaveBinding", ctx, binding).Return(nil)

		result, err := service.Revoke(ctx, binding.ID)

		require.NoError(t, err)
		assert.True(t, result.Revoked)
		assert.Equal(t, shop.VoucherStatusRevoked, voucher.Status)
	})

	t.Run("still revokes the binding when the voucher row is gone", func(t *testing.T) {
		voucherRepo := new(MockVoucherRepository)
		service := NewVoucherService(voucherRepo, new(MockProductRepository))
		ctx := context.Background()

		voucher := createTestVoucher("PIN-0001")
		binding := createTestBinding(voucher)

		voucherRepo.On("FindBindingByID", ctx, binding.ID).Return(binding, nil)
		voucherRepo.On("FindByID", ctx, voucher.ID).Return(nil, shared.ErrNotFound)
		voucherRepo.On("SaveBinding", ctx, binding).Return(nil)

		result, err := service.Revoke(ctx, binding.ID)

		require.NoError(t, err)
		assert.True(t, result.Revoked)
		voucherRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
