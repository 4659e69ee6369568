package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverAccessError(t *testing.T, fn func()) (accessErr *AccessError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		accessErr, ok = r.(*AccessError)
		require.True(t, ok, "panic value should be *AccessError, got %T", r)
	}()
	fn()
	return nil
}

func TestGuard(t *testing.T) {
	t.Run("ZeroValuePanicsNotInitialized", func(t *testing.T) {
		var g Guard
		err := recoverAccessError(t, func() { g.Check("cart", "Items") })
		assert.True(t, errors.Is(err, ErrNotInitialized))
		assert.Equal(t, "cart", err.Store)
		assert.Equal(t, "Items", err.Op)
		assert.NotEmpty(t, err.StackTrace())
	})

	t.Run("OpenAllowsAccess", func(t *testing.T) {
		var g Guard
		g.Open()
		assert.True(t, g.IsOpen())
		assert.NotPanics(t, func() { g.Check("cart", "Items") })
	})

	t.Run("ClosedPanicsClosed", func(t *testing.T) {
		var g Guard
		g.Open()
		g.Close()
		g.Close()
		assert.False(t, g.IsOpen())
		err := recoverAccessError(t, func() { g.Check("orders", "AddOrder") })
		assert.True(t, errors.Is(err, ErrClosed))
		assert.Contains(t, err.Error(), "orders.AddOrder")
	})
}
