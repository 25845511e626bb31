package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("SubmitOrderCommand must be created via NewSubmitOrderCommand")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type account struct {
		name  string
		guard guard.ConstructorGuard
	}
	errAccountNotConstructed := errors.New("account must be created via newAccount")

	newAccount := func(name string) (account, error) {
		if name == "" {
			return account{}, errors.New("name is required")
		}
		return account{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		a, err := newAccount("alice")

		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAccountNotConstructed))
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		a := account{name: "mallory"}

		require.ErrorIs(t, a.guard.Validate(errAccountNotConstructed), errAccountNotConstructed)
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
