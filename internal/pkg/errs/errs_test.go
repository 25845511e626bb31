package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", uint64(7))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, uint64(7), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("food", "12", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: food 12 (cause: database connection failed)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("account")

		assert.Equal(t, "account", err.ParamName)
		assert.Equal(t, "value is invalid: account", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("price", errors.New("not a number"))

		assert.Equal(t, "value is invalid: price (cause: not a number)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("eta", -1, 0, 100)

		assert.Equal(t, -1, err.Value)
		assert.Equal(t, "value is out of range: eta is -1, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("text", "hello\nworld", 0, 10, errors.New("a\nb"))

		assert.Contains(t, err.Error(), "hello world")
		assert.Contains(t, err.Error(), "(cause: a b)")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank"))
	assert.Equal(t, "value is required: name (cause: blank)", withCause.Error())
}

func TestLedgerErrors(t *testing.T) {
	t.Run("already registered", func(t *testing.T) {
		err := errs.NewAlreadyRegisteredError("customer", "alice")

		assert.Equal(t, "already registered: account alice as customer", err.Error())
		require.ErrorIs(t, err, errs.ErrAlreadyRegistered)
	})

	t.Run("unauthorized", func(t *testing.T) {
		err := errs.NewUnauthorizedError("bob", "restaurant")

		assert.Equal(t, "unauthorized: account bob is not a restaurant", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("not owner", func(t *testing.T) {
		err := errs.NewNotOwnerError("food", uint64(3), uint64(2))

		assert.Equal(t, "caller is not the owner: food 3 (caller 2)", err.Error())
		require.ErrorIs(t, err, errs.ErrNotOwner)
	})

	t.Run("payment mismatch", func(t *testing.T) {
		err := errs.NewPaymentMismatchError("100", "99")

		assert.Equal(t, "payment mismatch: expected 100, paid 99", err.Error())
		require.ErrorIs(t, err, errs.ErrPaymentMismatch)
	})

	t.Run("invalid transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order", "Confirmed", "confirm")

		assert.Equal(t, "invalid transition: cannot confirm order in status Confirmed", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit order: %w", errs.NewPaymentMismatchError("10", "0"))

	require.ErrorIs(t, wrapped, errs.ErrPaymentMismatch)
	assert.NotErrorIs(t, wrapped, errs.ErrNotOwner)

	var target *errs.PaymentMismatchError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "10", target.Expected)
}
