package pdf_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/pdf"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument(rows int) quotation.Document {
	issued := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	doc := quotation.Document{
		Number:     "QT-1A2B3C4D",
		IssuedAt:   issued,
		ValidUntil: issued.Add(quotation.Validity),
		Issuer: quotation.Issuer{
			Name:     "Kijiji Supplies",
			Address:  "Moi Avenue 12, Nairobi",
			Phone:    "+254700000000",
			Email:    "orders@kijiji.example",
			Currency: "KES",
		},
		Customer: quotation.Customer{Name: "Wanjiru Kamau", Email: "wanjiru@example.com", Phone: "0712345678"},
		ShippingAddress: order.ShippingAddress{
			Name: "Wanjiru Kamau", Phone: "0712345678", City: "Nakuru", Region: "Rift Valley", AddressLine: "Kenyatta Avenue 3",
		},
		DeliveryLocation: "Nakuru Town",
		Carrier:          "G4S",
		Summary: quotation.Summary{
			Subtotal: kernel.MustMoney(int64(rows) * 1000),
			Shipping: kernel.MustMoney(300),
			Total:    kernel.MustMoney(int64(rows)*1000 + 300),
		},
		Instructions: quotation.PaymentInstructions(quotation.Payee{PayBillNumber: "247247", AccountNumber: "KIJIJI"}, "KES",
			kernel.MustMoney(int64(rows)*1000+300), "QT-1A2B3C4D"),
		Terms:  []string{"This quotation is valid for 48 hours from the date of issue."},
		Footer: "Kijiji Supplies | +254700000000",
	}
	for i := range rows {
		doc.Rows = append(doc.Rows, quotation.Row{
			Name:      fmt.Sprintf("Solar lantern model %d with an unusually long descriptive product name for wrapping", i+1),
			Quantity:  1,
			UnitPrice: kernel.MustMoney(1000),
			Total:     kernel.MustMoney(1000),
		})
	}
	return doc
}

func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page\n"))
}

func TestRenderer_Render(t *testing.T) {
	data, err := pdf.NewRenderer().Render(newDocument(2))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(data))
}

func TestRenderer_Render_IsDeterministic(t *testing.T) {
	r := pdf.NewRenderer()

	first, err := r.Render(newDocument(5))
	require.NoError(t, err)
	second, err := r.Render(newDocument(5))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderer_Render_BreaksLongTablesAcrossPages(t *testing.T) {
	data, err := pdf.NewRenderer().Render(newDocument(80))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, pageCount(data), 3)
}
