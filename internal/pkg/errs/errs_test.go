package errs_test

import (
	"errors"
	"testing"

	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classified via errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("loadId", "abc")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.False(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sequence", 0, 1, 100)

		assert.Equal(t, "sequence", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 0 is sequence, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sentinel message is distinct", func(t *testing.T) {
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.NotEqual(t, errs.ErrValueIsInvalid.Error(), errs.ErrValueIsOutOfRange.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestStatusTransitionError(t *testing.T) {
	t.Run("NewStatusTransitionError", func(t *testing.T) {
		err := errs.NewStatusTransitionError("ORDER", "PENDING", "IN_TRANSIT")

		assert.Equal(t, "ORDER", err.EntityType)
		assert.Equal(t, "PENDING", err.From)
		assert.Equal(t, "IN_TRANSIT", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "status transition is not allowed: ORDER PENDING -> IN_TRANSIT", err.Error())
		assert.Equal(t, errs.ErrStatusTransitionNotAllowed, err.Unwrap())
	})

	t.Run("NewStatusTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("edge not declared")
		err := errs.NewStatusTransitionErrorWithCause("LOAD", "PENDING", "DELIVERED", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"status transition is not allowed: LOAD PENDING -> DELIVERED (cause: edge not declared)",
			err.Error())
	})

	t.Run("classified via errors.Is", func(t *testing.T) {
		var err error = errs.NewStatusTransitionError("STOP", "PENDING", "COMPLETED")
		assert.True(t, errors.Is(err, errs.ErrStatusTransitionNotAllowed))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order still owns loads")

		assert.Equal(t, "order still owns loads", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation conflicts with current state: order still owns loads", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("loads count is 2")
		err := errs.NewConflictErrorWithCause("order still owns loads", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation conflicts with current state: order still owns loads (cause: loads count is 2)",
			err.Error())
	})
}
