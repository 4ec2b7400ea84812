package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotalMatchesEntries(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Margherita Pizza", d("12.99"), 2))
	require.NoError(t, c.Add(3, "Classic Burger", d("8.99"), 1))

	assert.True(t, c.Subtotal().Equal(d("34.97")), "subtotal = %s", c.Subtotal())
	assert.True(t, c.Total().Equal(d("34.97")), "total = %s", c.Total())

	entries := c.Entries()
	require.Len(t, entries, 2)
	// insertion order preserved
	assert.Equal(t, uint(1), entries[0].FoodItemID)
	assert.Equal(t, uint(3), entries[1].FoodItemID)
	assert.True(t, entries[0].Extended().Equal(d("25.98")))
}

func TestAddRejectsBadQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pizza", d("12.99"), 1))

	for _, qty := range []int{0, -1, -10} {
		err := c.Add(1, "Pizza", d("12.99"), qty)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Validation))
	}

	// cart unchanged
	assert.Len(t, c.Entries(), 1)
	assert.True(t, c.Total().Equal(d("12.99")))
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pizza", d("12.99"), 2))

	c.Clear()
	assert.Empty(t, c.Entries())
	assert.True(t, c.Total().IsZero())

	c.Clear()
	assert.Empty(t, c.Entries())
	assert.True(t, c.Total().IsZero())
}

func TestPricingVariants(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pizza", d("10.00"), 1))

	// default is the identity
	assert.True(t, c.Total().Equal(d("10.00")))

	require.NoError(t, c.SetPricing(PricingDeliverySurcharge))
	assert.True(t, c.Total().Equal(d("12.00")))

	err := c.SetPricing(PricingKind(99))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	// failed set keeps the previous variant
	assert.True(t, c.Total().Equal(d("12.00")))
}

func TestExtrasModifyEntry(t *testing.T) {
	mods, err := ExtrasByName("extra_cheese")
	require.NoError(t, err)

	c := New()
	require.NoError(t, c.Add(1, "Margherita Pizza", d("12.99"), 1, mods...))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Margherita Pizza + Extra Cheese", entries[0].Name)
	assert.True(t, entries[0].UnitPrice.Equal(d("14.49")))

	_, err = ExtrasByName("pineapple")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCheckoutClaim(t *testing.T) {
	c := New()

	_, err := c.Checkout()
	require.Error(t, err, "empty cart cannot be checked out")
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	require.NoError(t, c.Add(2, "Pasta", d("10.49"), 1))

	snap, err := c.Checkout()
	require.NoError(t, err)
	require.Len(t, snap.Entries, 1)
	assert.True(t, snap.Total.Equal(d("10.49")))

	_, err = c.Checkout()
	require.Error(t, err, "second claim must lose")
	assert.True(t, apperr.IsKind(err, apperr.Conflict))

	// a failed placement releases the claim and keeps the entries
	c.Reopen()
	assert.Len(t, c.Entries(), 1)
	_, err = c.Checkout()
	require.NoError(t, err)

	// a successful placement ends with Clear, reopening the cart empty
	c.Clear()
	_, err = c.Checkout()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestSnapshotIsImmutable(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pizza", d("12.99"), 1))

	snap, err := c.Checkout()
	require.NoError(t, err)
	c.Reopen()
	require.NoError(t, c.Add(3, "Burger", d("8.99"), 1))

	assert.Len(t, snap.Entries, 1, "snapshot must not see later adds")
	assert.True(t, snap.Total.Equal(d("12.99")))
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	c := New()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Add(1, "Pizza", d("12.99"), 1)
		}()
	}
	wg.Wait()

	assert.Len(t, c.Entries(), n)
	assert.True(t, c.Total().Equal(d("12.99").Mul(decimal.NewFromInt(n))))
}
