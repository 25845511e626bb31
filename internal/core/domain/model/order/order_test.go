package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newSubmittedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, 2, 3, 4, "1 Main St", "555-0100", kernel.NewAmount(100), submittedAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start submitted with no eta and no deliverer", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.EntityID(1), o.ID())
		assert.Equal(t, kernel.EntityID(2), o.FoodID())
		assert.Equal(t, kernel.EntityID(3), o.RestaurantID())
		assert.Equal(t, kernel.EntityID(4), o.CustomerID())
		assert.Equal(t, kernel.Unassigned, o.DelivererID())
		assert.Equal(t, "1 Main St", o.Address())
		assert.Equal(t, "555-0100", o.Phone())
		assert.Equal(t, order.Submitted, o.Status())
		assert.Equal(t, submittedAt, o.SubmittedAt())
		assert.True(t, o.Price().IsEqual(kernel.NewAmount(100)))
		assert.Zero(t, o.Eta())
		assert.True(t, o.IsPlacedBy(4))
		assert.False(t, o.IsPlacedBy(5))
	})

	t.Run("should reject missing references and address", func(t *testing.T) {
		_, err := order.NewOrder(1, 0, 0, 0, " ", "", kernel.NewAmount(1), submittedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"food id", "restaurant id", "customer id", "delivery address"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.Confirm(30*time.Minute))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 30*time.Minute, o.Eta())

		require.NoError(t, o.Dispatch())
		assert.Equal(t, order.Dispatched, o.Status())

		require.NoError(t, o.MarkDelivered(7))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, kernel.EntityID(7), o.DelivererID())

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should not confirm twice", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.Confirm(time.Minute))

		err := o.Confirm(time.Hour)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, time.Minute, o.Eta())
	})

	t.Run("should not accept before delivery", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.Confirm(time.Minute))
		require.NoError(t, o.Dispatch())

		err := o.Accept()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("should not dispatch a submitted order", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.ErrorIs(t, o.Dispatch(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Submitted, o.Status())
	})

	t.Run("should require a deliverer on pickup", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.Confirm(time.Minute))
		require.NoError(t, o.Dispatch())

		require.ErrorIs(t, o.MarkDelivered(kernel.Unassigned), errs.ErrValueIsRequired)
		assert.Equal(t, order.Dispatched, o.Status())
	})
}

func TestOrder_RemainingEta(t *testing.T) {
	o := newSubmittedOrder(t)
	require.NoError(t, o.Confirm(30*time.Minute))

	assert.Equal(t, 30*time.Minute, o.RemainingEta(submittedAt))
	assert.Equal(t, 20*time.Minute, o.RemainingEta(submittedAt.Add(10*time.Minute)))
	assert.Zero(t, o.RemainingEta(submittedAt.Add(30*time.Minute)))
	assert.Zero(t, o.RemainingEta(submittedAt.Add(48*time.Hour)))
	assert.Equal(t, 30*time.Minute, o.RemainingEta(submittedAt.Add(-time.Minute)))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a delivered order", func(t *testing.T) {
		o, err := order.RestoreOrder(1, 2, 3, 4, 5, "1 Main St", "", order.Delivered, submittedAt,
			kernel.NewAmount(100), time.Minute)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, kernel.EntityID(5), o.DelivererID())
		assert.Equal(t, time.Minute, o.Eta())
	})

	t.Run("should reject a deliverer on an undelivered order", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 2, 3, 4, 5, "1 Main St", "", order.Confirmed, submittedAt,
			kernel.NewAmount(100), time.Minute)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 2, 3, 4, 0, "1 Main St", "", order.Unknown, submittedAt,
			kernel.NewAmount(100), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
