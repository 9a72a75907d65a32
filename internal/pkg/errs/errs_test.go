package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "ord-1")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "object not found: ord-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("cartID", "c-9", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: param is: cartID, ID is: c-9 (cause: record not found)", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("paymentMethod"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: paymentMethod",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("phone", errors.New("too short")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: phone (cause: too short)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 1000",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("page", -1, 1, 100, errors.New("bad query")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -1 is page, min value is 1, max value is 100 (cause: bad query)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("shippingAddress"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: shippingAddress",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("city", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: city (cause: blank)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("note", "line one\nline two", 0, 10)

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")
}

func TestAccessDeniedError(t *testing.T) {
	err := errs.NewAccessDeniedError("order", "ord-7")

	assert.Equal(t, "access denied: order ord-7", err.Error())
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("orderID", "x"))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "orderID", notFound.ParamName)
}
