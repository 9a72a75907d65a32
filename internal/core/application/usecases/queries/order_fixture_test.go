package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customerID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	ref, err := catalog.NewRef(catalog.KindProduct, kernel.NewUUID())
	require.NoError(t, err)
	line, err := order.NewLine(ref, "Solar lantern", 2, kernel.MustMoney(1000))
	require.NoError(t, err)
	address, err := order.NewShippingAddress("Wanjiru", "0712345678", "Nairobi", "Nairobi County", "Moi Avenue 12")
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentMpesa, "247247", "0712345678", "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Params{
		ID:               kernel.NewUUID(),
		CustomerID:       customerID,
		Items:            []order.Line{line},
		ShippingAddress:  address,
		ShippingLocation: "Nairobi",
		ShippingCarrier:  shipping.CarrierG4S,
		ShippingCost:     kernel.MustMoney(300),
		Payment:          payment,
	}, createdAt)
	require.NoError(t, err)
	return o
}
