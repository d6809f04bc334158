package shop

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pincoin/backend/internal/domain/shared"
	"github.com/pincoin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestOrder(t *testing.T) *Order {
	order, err := NewOrder("Test Customer", valueobject.KRW, PaymentMethodBankTransfer)
	require.NoError(t, err)
	return order
}

func addTestProduct(t *testing.T, order *Order, name string, sellingPrice float64, quantity int) *OrderProduct {
	listPrice := valueobject.NewMoneyKRWFromFloat(sellingPrice * 1.1)
	selling := valueobject.NewMoneyKRWFromFloat(sellingPrice)
	item, err := order.AddProduct(uuid.New(), name, "", "sku-"+name, listPrice, selling, quantity)
	require.NoError(t, err)
	return item
}

func recordTestPayment(t *testing.T, order *Order, amount float64) *OrderPayment {
	payment, err := order.RecordPayment(PaymentAccountKB,
		valueobject.NewMoneyKRWFromFloat(amount),
		valueobject.NewMoneyKRWFromFloat(0), time.Now())
	require.NoError(t, err)
	return payment
}

// ============================================
// OrderStatus Tests
// ============================================

func TestOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		isValid bool
	}{
		{OrderStatusPaymentPending, true},
		{OrderStatusPaymentCompleted, true},
		{OrderStatusUnderReview, true},
		{OrderStatusPaymentVerified, true},
		{OrderStatusShipped, true},
		{OrderStatusRefundRequested, true},
		{OrderStatusRefundPending, true},
		{OrderStatusRefunded, true},
		{OrderStatusVoided, true},
		{OrderStatus("INVALID"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     OrderStatus
		to       OrderStatus
		canTrans bool
	}{
		// From PAYMENT_PENDING
		{OrderStatusPaymentPending, OrderStatusPaymentCompleted, true},
		{OrderStatusPaymentPending, OrderStatusVoided, true},
		{OrderStatusPaymentPending, OrderStatusShipped, false},
		{OrderStatusPaymentPending, OrderStatusRefunded, false},
		// From PAYMENT_COMPLETED
		{OrderStatusPaymentCompleted, OrderStatusUnderReview, true},
		{OrderStatusPaymentCompleted, OrderStatusPaymentVerified, true},
		{OrderStatusPaymentCompleted, OrderStatusVoided, true},
		{OrderStatusPaymentCompleted, OrderStatusShipped, false},
		{OrderStatusPaymentCompleted, OrderStatusPaymentPending, false},
		// From UNDER_REVIEW
		{OrderStatusUnderReview, OrderStatusPaymentVerified, true},
		{OrderStatusUnderReview, OrderStatusVoided, true},
		{OrderStatusUnderReview, OrderStatusShipped, false},
		// From PAYMENT_VERIFIED
		{OrderStatusPaymentVerified, OrderStatusShipped, true},
		{OrderStatusPaymentVerified, OrderStatusVoided, true},
		{OrderStatusPaymentVerified, OrderStatusRefunded, false},
		// From SHIPPED
		{OrderStatusShipped, OrderStatusRefundRequested, true},
		{OrderStatusShipped, OrderStatusVoided, false},
		{OrderStatusShipped, OrderStatusPaymentPending, false},
		// From REFUND_REQUESTED
		{OrderStatusRefundRequested, OrderStatusRefundPending, true},
		{OrderStatusRefundRequested, OrderStatusRefunded, true},
		{OrderStatusRefundRequested, OrderStatusShipped, false},
		// From REFUND_PENDING
		{OrderStatusRefundPending, OrderStatusRefunded, true},
		{OrderStatusRefundPending, OrderStatusRefundRequested, false},
		// From REFUNDED (terminal)
		{OrderStatusRefunded, OrderStatusPaymentPending, false},
		{OrderStatusRefunded, OrderStatusRefundPending, false},
		{OrderStatusRefunded, OrderStatusVoided, false},
		// From VOIDED (terminal)
		{OrderStatusVoided, OrderStatusPaymentPending, false},
		{OrderStatusVoided, OrderStatusPaymentCompleted, false},
		{OrderStatusVoided, OrderStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusRefunded.IsTerminal())
	assert.True(t, OrderStatusVoided.IsTerminal())
	assert.False(t, OrderStatusPaymentPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

// ============================================
// NewOrder Tests
// ============================================

func TestNewOrder(t *testing.T) {
	t.Run("creates order with valid inputs", func(t *testing.T) {
		order, err := NewOrder("Test Customer", valueobject.KRW, PaymentMethodBankTransfer)
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.NotEqual(t, uuid.Nil, order.OrderNo)
		assert.Equal(t, "Test Customer", order.FullName)
		assert.Equal(t, OrderStatusPaymentPending, order.Status)
		assert.Equal(t, valueobject.KRW, order.Currency)
		assert.Nil(t, order.ParentID)
		assert.Empty(t, order.Products)
		assert.Empty(t, order.Payments)
		assert.True(t, order.TotalSellingPrice.IsZero())
		assert.Len(t, order.GetDomainEvents(), 1)
	})

	t.Run("defaults currency to KRW", func(t *testing.T) {
		order, err := NewOrder("Test Customer", "", PaymentMethodPayPal)
		require.NoError(t, err)
		assert.Equal(t, valueobject.KRW, order.Currency)
	})

	t.Run("rejects empty full name", func(t *testing.T) {
		_, err := NewOrder("", valueobject.KRW, PaymentMethodBankTransfer)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewOrder("Test Customer", valueobject.KRW, PaymentMethod("BITCOIN"))
		assert.Error(t, err)
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		_, err := NewOrder("Test Customer", valueobject.Currency("EUR"), PaymentMethodBankTransfer)
		assert.Error(t, err)
	})

	t.Run("generates distinct order numbers", func(t *testing.T) {
		a := createTestOrder(t)
		b := createTestOrder(t)
		assert.NotEqual(t, a.OrderNo, b.OrderNo)
	})
}

// ============================================
// Line Item Tests
// ============================================

func TestOrder_AddProduct(t *testing.T) {
	t.Run("adds line item and recalculates totals", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "gift-card-10000", 10000, 2)

		assert.Len(t, order.Products, 1)
		assert.True(t, order.TotalSellingPrice.Equal(decimal.NewFromInt(20000)))
		assert.True(t, order.TotalListPrice.Equal(decimal.NewFromInt(22000)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order := createTestOrder(t)
		price := valueobject.NewMoneyKRWFromFloat(10000)
		_, err := order.AddProduct(uuid.New(), "gift-card", "", "sku", price, price, 0)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		order := createTestOrder(t)
		price := valueobject.NewMoneyKRWFromFloat(10000)
		_, err := order.AddProduct(uuid.New(), "", "", "sku", price, price, 1)
		assert.Error(t, err)
	})
}

func TestOrder_RemoveProduct(t *testing.T) {
	t.Run("soft delete excludes item from totals", func(t *testing.T) {
		order := createTestOrder(t)
		kept := addTestProduct(t, order, "a", 10000, 1)
		removed := addTestProduct(t, order, "b", 5000, 1)
		require.True(t, order.TotalSellingPrice.Equal(decimal.NewFromInt(15000)))

		require.NoError(t, order.RemoveProduct(removed.ID))

		// row stays for audit, totals drop
		assert.Len(t, order.Products, 2)
		assert.True(t, order.TotalSellingPrice.Equal(decimal.NewFromInt(10000)))
		assert.False(t, order.Products[0].IsDeleted())
		assert.Equal(t, kept.ID, order.Products[0].ID)
	})

	t.Run("removing unknown item fails", func(t *testing.T) {
		order := createTestOrder(t)
		assert.ErrorIs(t, order.RemoveProduct(uuid.New()), shared.ErrNotFound)
	})

	t.Run("removing twice fails", func(t *testing.T) {
		order := createTestOrder(t)
		item := addTestProduct(t, order, "a", 10000, 1)
		require.NoError(t, order.RemoveProduct(item.ID))
		assert.ErrorIs(t, order.RemoveProduct(item.ID), shared.ErrNotFound)
	})
}

// ============================================
// Payment / Outstanding Balance Tests
// ============================================

func TestOrder_OutstandingBalance(t *testing.T) {
	t.Run("no payments means fully outstanding", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "a", 100, 1)

		assert.True(t, order.OutstandingBalance().Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("partial payment reduces balance", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "a", 100, 1)
		recordTestPayment(t, order, 60)

		assert.True(t, order.OutstandingBalance().Amount().Equal(decimal.NewFromInt(40)))
	})

	t.Run("multiple payments accumulate", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "a", 500, 1)
		recordTestPayment(t, order, 200)
		recordTestPayment(t, order, 150)

		assert.True(t, order.OutstandingBalance().Amount().Equal(decimal.NewFromInt(150)))
	})

	t.Run("overpayment yields negative balance without error", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "a", 100, 1)
		recordTestPayment(t, order, 160)

		balance := order.OutstandingBalance()
		assert.True(t, balance.IsNegative())
		assert.True(t, balance.Amount().Equal(decimal.NewFromInt(-60)))
	})

	t.Run("soft-deleted payment stops counting", func(t *testing.T) {
		order := createTestOrder(t)
		addTestProduct(t, order, "a", 100, 1)
		payment := recordTestPayment(t, order, 60)
		require.True(t, order.OutstandingBalance().Amount().Equal(decimal.NewFromInt(40)))

		require.NoError(t, order.RemovePayment(payment.ID))

		assert.Len(t, order.Payments, 1) // audit row remains
		assert.True(t, order.OutstandingBalance().Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("balance carries the order currency", func(t *testing.T) {
		order, err := NewOrder("Test Customer", valueobject.USD, PaymentMethodPayPal)
		require.NoError(t, err)
		assert.Equal(t, valueobject.USD, order.OutstandingBalance().Currency())
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	t.Run("rejects non-positive amount", func(t *testing.T) {
		order := createTestOrder(t)
		_, err := order.RecordPayment(PaymentAccountKB, valueobject.ZeroKRW(), valueobject.ZeroKRW(), time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown account", func(t *testing.T) {
		order := createTestOrder(t)
		_, err := order.RecordPayment(PaymentAccount("HANA"), valueobject.NewMoneyKRWFromFloat(100), valueobject.ZeroKRW(), time.Now())
		assert.Error(t, err)
	})

	t.Run("raises payment recorded event", func(t *testing.T) {
		order := createTestOrder(t)
		order.ClearDomainEvents()
		recordTestPayment(t, order, 100)

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOrderPaymentRecorded, events[0].EventType())
	})
}

// ============================================
// Status Transition Tests
// ============================================

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("legal transition updates status", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.TransitionTo(OrderStatusPaymentCompleted))
		assert.Equal(t, OrderStatusPaymentCompleted, order.Status)
	})

	t.Run("illegal transition keeps original status", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.TransitionTo(OrderStatusShipped)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ILLEGAL_STATUS_TRANSITION", domainErr.Code)
		assert.Equal(t, OrderStatusPaymentPending, order.Status)
	})

	t.Run("unknown target rejected", func(t *testing.T) {
		order := createTestOrder(t)
		assert.Error(t, order.TransitionTo(OrderStatus("LOST")))
	})

	t.Run("full happy path to refunded", func(t *testing.T) {
		order := createTestOrder(t)
		for _, status := range []OrderStatus{
			OrderStatusPaymentCompleted,
			OrderStatusUnderReview,
			OrderStatusPaymentVerified,
			OrderStatusShipped,
			OrderStatusRefundRequested,
			OrderStatusRefundPending,
			OrderStatusRefunded,
		} {
			require.NoError(t, order.TransitionTo(status))
		}
		assert.Equal(t, OrderStatusRefunded, order.Status)
	})

	t.Run("terminal status admits nothing", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.TransitionTo(OrderStatusVoided))
		assert.Error(t, order.TransitionTo(OrderStatusPaymentPending))
	})
}

// ============================================
// Refund Order Tests
// ============================================

func TestOrder_NewRefundOrder(t *testing.T) {
	t.Run("child carries parent totals", func(t *testing.T) {
		parent := createTestOrder(t)
		addTestProduct(t, parent, "a", 10000, 3)

		refund, err := parent.NewRefundOrder("customer request")
		require.NoError(t, err)

		require.NotNil(t, refund.ParentID)
		assert.Equal(t, parent.ID, *refund.ParentID)
		assert.Equal(t, OrderStatusRefundRequested, refund.Status)
		assert.True(t, refund.TotalSellingPrice.Equal(parent.TotalSellingPrice))
		assert.NotEqual(t, parent.OrderNo, refund.OrderNo)
		assert.True(t, refund.IsRefundOrder())
	})

	t.Run("refund of a refund rejected", func(t *testing.T) {
		parent := createTestOrder(t)
		refund, err := parent.NewRefundOrder("")
		require.NoError(t, err)

		_, err = refund.NewRefundOrder("")
		assert.Error(t, err)
	})
}
