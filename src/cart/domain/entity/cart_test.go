package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartItem(t *testing.T, lineID, price string, quantity int) CartItem {
	t.Helper()
	item, err := NewCartItem(lineID, "Item "+lineID, decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	return *item
}

func TestNewCartItem_Validation(t *testing.T) {
	_, err := NewCartItem("", "Rosas", decimal.NewFromInt(10), 1)
	assert.ErrorIs(t, err, ErrLineIDRequired)

	_, err = NewCartItem("p-1", "", decimal.NewFromInt(10), 1)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewCartItem("p-1", "Rosas", decimal.NewFromInt(-1), 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewCartItem("p-1", "Rosas", decimal.NewFromInt(10), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartAdd_MergesByLineID(t *testing.T) {
	cart, err := NewCart("ana@example.com")
	require.NoError(t, err)

	cart.Add(cartItem(t, "p-1", "10.00", 1))
	cart.Add(cartItem(t, "p-1", "10.00", 2))
	cart.Add(cartItem(t, "p-2", "5.00", 1))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 4, cart.Count())
}

func TestCartAdd_CompositesWithFreshIDsNeverMerge(t *testing.T) {
	cart, err := NewCart("ana@example.com")
	require.NoError(t, err)

	first := cartItem(t, "custom-1700000000000000001", "60.00", 1)
	first.IsComposite = true
	second := cartItem(t, "custom-1700000000000000002", "60.00", 1)
	second.IsComposite = true

	cart.Add(first)
	cart.Add(second)

	// Dos ramos idénticos armados por separado quedan como líneas distintas
	assert.Len(t, cart.Items, 2)
}

func TestCartUpdateQuantity_BelowOneRemovesLine(t *testing.T) {
	cart, _ := NewCart("ana@example.com")
	cart.Add(cartItem(t, "p-1", "10.00", 2))

	require.NoError(t, cart.UpdateQuantity("p-1", 5))
	assert.Equal(t, 5, cart.Items[0].Quantity)

	require.NoError(t, cart.UpdateQuantity("p-1", 0))
	assert.Empty(t, cart.Items)

	assert.ErrorIs(t, cart.UpdateQuantity("p-9", 1), ErrCartItemNotFound)
}

func TestCartRemove_UnknownLine(t *testing.T) {
	cart, _ := NewCart("ana@example.com")
	assert.ErrorIs(t, cart.Remove("p-1"), ErrCartItemNotFound)
}

func TestComputeTotals_DeliveryFeeApplied(t *testing.T) {
	cart, _ := NewCart("ana@example.com")
	cart.Add(cartItem(t, "p-1", "25.50", 2))

	totals := ComputeTotals(cart)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("51.00")))
	assert.True(t, totals.DeliveryFee.Equal(DeliveryFee))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("66.00")))
	assert.Equal(t, 2, totals.ItemCount)
}

func TestComputeTotals_FreeDeliveryOverThreshold(t *testing.T) {
	cart, _ := NewCart("ana@example.com")
	cart.Add(cartItem(t, "p-1", "100.50", 2))

	totals := ComputeTotals(cart)

	assert.True(t, totals.DeliveryFee.IsZero())
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("201.00")))
}

func TestComputeTotals_ExactlyAtThresholdStillPaysDelivery(t *testing.T) {
	cart, _ := NewCart("ana@example.com")
	cart.Add(cartItem(t, "p-1", "200.00", 1))

	totals := ComputeTotals(cart)

	assert.True(t, totals.DeliveryFee.Equal(DeliveryFee))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("215.00")))
}

func TestComputeTotals_EmptyCartHasNoFee(t *testing.T) {
	cart, _ := NewCart("ana@example.com")

	totals := ComputeTotals(cart)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.DeliveryFee.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.Equal(t, 0, totals.ItemCount)
}
