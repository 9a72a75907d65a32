package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("command not constructed")

	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		given   error
		wantErr error
	}{
		{
			name:  "constructed guard ignores custom error",
			guard: guard.NewConstructorGuard(),
			given: notConstructed,
		},
		{
			name:  "constructed guard ignores nil error",
			guard: guard.NewConstructorGuard(),
		},
		{
			name:    "zero value returns custom error",
			guard:   guard.ConstructorGuard{},
			given:   notConstructed,
			wantErr: notConstructed,
		},
		{
			name:    "zero value falls back to default error",
			guard:   guard.ConstructorGuard{},
			wantErr: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.given)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}
	errQuantityNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v <= 0 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value passes", func(t *testing.T) {
		q, err := newQuantity(3)
		require.NoError(t, err)
		assert.NoError(t, q.guard.Validate(errQuantityNotConstructed))
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var q quantity
		assert.ErrorIs(t, q.guard.Validate(errQuantityNotConstructed), errQuantityNotConstructed)
	})

	t.Run("copies keep the guard", func(t *testing.T) {
		q, err := newQuantity(1)
		require.NoError(t, err)
		cp := q
		assert.NoError(t, cp.guard.Validate(errQuantityNotConstructed))
	})
}
