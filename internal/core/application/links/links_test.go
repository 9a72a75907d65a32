package links_test

import (
	"testing"

	"fulfillment/internal/core/application/links"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	b := links.NewBuilder(" https://shop.example/api/v1/ ")

	assert.Equal(t, "https://shop.example/api/v1/orders/550e8400-e29b-41d4-a716-446655440000/quotation", b.Quotation(id))
	assert.Equal(t, "https://shop.example/api/v1/orders/550e8400-e29b-41d4-a716-446655440000", b.Tracking(id))
}
