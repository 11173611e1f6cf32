package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusProcessing, true},
		{StatusProcessing, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},

		// Cancel chỉ từ PENDING/CONFIRMED
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, false},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusCancelled, false},

		// Không skip bước
		{StatusPending, StatusProcessing, false},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusShipped, false},

		// Không đi lùi
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusPending, false},

		// Terminal states
		{StatusCancelled, StatusConfirmed, false},
		{StatusDelivered, StatusShipped, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusCancellable(t *testing.T) {
	require.True(t, StatusPending.Cancellable())
	require.True(t, StatusConfirmed.Cancellable())
	require.False(t, StatusProcessing.Cancellable())
	require.False(t, StatusShipped.Cancellable())
	require.False(t, StatusDelivered.Cancellable())
	require.False(t, StatusCancelled.Cancellable())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		require.True(t, s.Valid())
	}
	require.False(t, Status("RETURNED").Valid())
	require.False(t, Status("").Valid())
}

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, UnitPrice: decimal.NewFromFloat(49.99)},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(200)},
	}

	total := ComputeTotal(items)
	require.Equal(t, "299.98", total.StringFixed(2))
}

func TestComputeTotal_Empty(t *testing.T) {
	require.True(t, ComputeTotal(nil).IsZero())
}

func TestLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: decimal.NewFromFloat(19.90)}
	require.Equal(t, "59.70", item.LineTotal().StringFixed(2))
}

func TestCheckoutRequestValidate(t *testing.T) {
	valid := CheckoutRequest{
		Items:           []CheckoutItem{{Quantity: 1, Size: "M"}},
		ShippingName:    "Anna Wong",
		ShippingPhone:   "+4915234567890",
		ShippingAddress: "12 Fashion Street",
		ShippingCity:    "Berlin",
		ShippingCountry: "Germany",
	}
	require.NoError(t, valid.Validate())

	t.Run("empty cart", func(t *testing.T) {
		req := valid
		req.Items = nil
		require.ErrorIs(t, req.Validate(), ErrEmptyCart)
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := valid
		req.Items = []CheckoutItem{{Quantity: 0}}
		require.ErrorIs(t, req.Validate(), ErrInvalidQuantity)
	})

	t.Run("missing shipping fields", func(t *testing.T) {
		req := valid
		req.ShippingCity = ""
		require.Error(t, req.Validate())
	})
}
