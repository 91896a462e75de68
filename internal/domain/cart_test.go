package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartRecalculate(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: 1, ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("10.50")},
			{ID: 2, ProductID: 2, Quantity: 3, Price: decimal.RequireFromString("4.00")},
		},
	}

	cart.Recalculate()
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("33.00")))

	// subtotal follows every mutation, it is never carried forward
	cart.RemoveItem(1)
	cart.Recalculate()
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("12.00")))

	cart.Items = nil
	cart.Recalculate()
	assert.True(t, cart.Subtotal.IsZero())
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{Items: []CartItem{{ID: 1}, {ID: 2}}}

	assert.True(t, cart.RemoveItem(2))
	assert.Len(t, cart.Items, 1)
	assert.False(t, cart.RemoveItem(2))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("Refunded"))
	assert.False(t, ValidStatus("pending"))
}
