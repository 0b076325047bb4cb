package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func mustLineItem(t *testing.T, name string, quantity int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"221B Baker Street",
		"",
		[]order.LineItem{mustLineItem(t, "Margherita", 1, "9.50")},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewLineItem(t *testing.T) {
	t.Run("should compute subtotal as quantity times unit price", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Garlic Bread", 3, decimal.RequireFromString("5.00"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Garlic Bread", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("15.00")))
	})

	t.Run("should fail with invalid menu item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLineItem(invalidID, "Garlic Bread", 1, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "", 1, decimal.NewFromInt(5))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "Garlic Bread", 0, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "Garlic Bread", 1, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit price is invalid")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var item order.LineItem

		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, "Margherita", 2, "10.00"),
			mustLineItem(t, "Pepperoni", 1, "20.00"),
			mustLineItem(t, "Cola", 3, "5.00"),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"221B Baker Street", "leave at door", items, now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, "221B Baker Street", o.DeliveryAddress())
		assert.Equal(t, "leave at door", o.SpecialInstructions())
		assert.Len(t, o.Items(), 3)
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should total line item subtotals", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, "Margherita", 2, "10.00"),
			mustLineItem(t, "Pepperoni", 1, "20.00"),
			mustLineItem(t, "Cola", 3, "5.00"),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"221B Baker Street", "", items, now,
		)

		require.NoError(t, err)
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("55.00")),
			"got total %s", o.TotalAmount())
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Margherita", 1, "9.50")}

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "", items, now)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with no line items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"221B Baker Street", "", nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed line item", func(t *testing.T) {
		var bad order.LineItem

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"221B Baker Street", "", []order.LineItem{bad}, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		items := []order.LineItem{mustLineItem(t, "Margherita", 1, "9.50")}

		o, err := order.NewOrder(invalidID, invalidID, kernel.NewUUID(), "", "", items, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "delivery address")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail on nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail on zero value order", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		updated := created.Add(10 * time.Minute)
		items := []order.LineItem{mustLineItem(t, "Margherita", 1, "9.50")}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.StatusPreparing, order.PaymentCompleted,
			decimal.RequireFromString("9.50"),
			"221B Baker Street", "", items, created, updated,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("should fail with invalid stored status", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Margherita", 1, "9.50")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.StatusUnknown, order.PaymentPending,
			decimal.Zero, "221B Baker Street", "", items, time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the happy path and stamp updated time", func(t *testing.T) {
		o := newTestOrder(t)
		now := o.UpdatedAt()

		for _, target := range []order.Status{
			order.StatusConfirmed, order.StatusPreparing, order.StatusReady,
			order.StatusPickedUp, order.StatusDelivered,
		} {
			now = now.Add(time.Minute)
			require.NoError(t, o.TransitionTo(target, now))
			assert.Equal(t, target, o.Status())
			assert.Equal(t, now, o.UpdatedAt())
		}
	})

	t.Run("should reject forbidden transition and leave state unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.TransitionTo(order.StatusDelivered, before.Add(time.Minute))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from any non-terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusConfirmed, time.Now()))

		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should fail when already delivered", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now()
		for _, target := range []order.Status{
			order.StatusConfirmed, order.StatusPreparing, order.StatusReady,
			order.StatusPickedUp, order.StatusDelivered,
		} {
			require.NoError(t, o.TransitionTo(target, now))
		}

		err := o.Cancel(now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail when already cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(time.Now()))

		err := o.Cancel(time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_PaymentOutcome(t *testing.T) {
	t.Run("successful payment should confirm the order", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now()

		o.MarkPaymentCompleted(now)

		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("failed payment should leave order status unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		o.MarkPaymentFailed(time.Now())

		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_ApplyDeliveryDrivenStatus(t *testing.T) {
	t.Run("should allow confirmed straight to ready", func(t *testing.T) {
		o := newTestOrder(t)
		o.MarkPaymentCompleted(time.Now())

		applied := o.ApplyDeliveryDrivenStatus(order.StatusReady, time.Now())

		assert.True(t, applied)
		assert.Equal(t, order.StatusReady, o.Status())
	})

	t.Run("should report not applied on duplicate terminal update", func(t *testing.T) {
		o := newTestOrder(t)
		o.MarkPaymentCompleted(time.Now())
		require.True(t, o.ApplyDeliveryDrivenStatus(order.StatusReady, time.Now()))
		require.True(t, o.ApplyDeliveryDrivenStatus(order.StatusDelivered, time.Now()))

		applied := o.ApplyDeliveryDrivenStatus(order.StatusDelivered, time.Now())

		assert.False(t, applied)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should not apply backwards moves", func(t *testing.T) {
		o := newTestOrder(t)
		o.MarkPaymentCompleted(time.Now())
		require.True(t, o.ApplyDeliveryDrivenStatus(order.StatusPickedUp, time.Now()))

		applied := o.ApplyDeliveryDrivenStatus(order.StatusReady, time.Now())

		assert.False(t, applied)
		assert.Equal(t, order.StatusPickedUp, o.Status())
	})
}
