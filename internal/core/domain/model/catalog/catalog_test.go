package catalog_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRef(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("product and package kinds are accepted", func(t *testing.T) {
		for _, kind := range []catalog.Kind{catalog.KindProduct, catalog.KindPackage} {
			ref, err := catalog.NewRef(kind, id)
			require.NoError(t, err)
			assert.Equal(t, string(kind)+":"+id.String(), ref.String())
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := catalog.NewRef("service", id)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		_, err := catalog.NewRef(catalog.KindProduct, kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("equality needs same kind and id", func(t *testing.T) {
		product, _ := catalog.NewRef(catalog.KindProduct, id)
		pkg, _ := catalog.NewRef(catalog.KindPackage, id)

		assert.True(t, product.IsEqual(product))
		assert.False(t, product.IsEqual(pkg))
	})
}

func TestNewEntry(t *testing.T) {
	ref, err := catalog.NewRef(catalog.KindProduct, kernel.NewUUID())
	require.NoError(t, err)

	entry, err := catalog.NewEntry(ref, " Solar Lamp ", kernel.MustMoney(1000), true)
	require.NoError(t, err)
	assert.Equal(t, "Solar Lamp", entry.Name)
	assert.True(t, entry.FreeShipping)

	_, err = catalog.NewEntry(ref, "", kernel.MustMoney(1000), false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
