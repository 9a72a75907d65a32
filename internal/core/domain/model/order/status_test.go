package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  order.Status
	}{
		{input: "pending", want: order.Pending},
		{input: "Processing", want: order.Processing},
		{input: " SHIPPED ", want: order.Shipped},
		{input: "delivered", want: order.Delivered},
		{input: "cancelled", want: order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := order.ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, got.Validate())
		})
	}

	for _, bad := range []string{"", "unknown", "returned"} {
		_, err := order.ParseStatus(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestPaymentStatus(t *testing.T) {
	require.NoError(t, order.PaymentPending.Validate())
	require.NoError(t, order.PaymentPaid.Validate())
	require.Error(t, order.PaymentUnknown.Validate())
	assert.Equal(t, "paid", order.PaymentPaid.String())
}
