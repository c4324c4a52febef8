package result_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/pkg/result"
)

func TestSuccess(t *testing.T) {
	res := result.Success(42)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 42, res.Value())
}

func TestFailure(t *testing.T) {
	res := result.Failure[int](result.BankUnavailableError())

	assert.True(t, res.IsFailure())
	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.CodeBankUnavailable, res.Err().Code)
}

func TestFailure_ShapesForAnyResultType(t *testing.T) {
	// A shared pipeline stage only knows "this failed" - the same Error must
	// produce failures for unrelated result types.
	err := result.InternalError("boom")

	asInt := result.Failure[int](err)
	asString := result.Failure[string](err)

	assert.Equal(t, err, asInt.Err())
	assert.Equal(t, err, asString.Err())
}

func TestMatch_DispatchesOnSuccess(t *testing.T) {
	res := result.Success("hello")

	out := result.Match(res,
		func(v string) string { return "success:" + v },
		func(e result.Error) string { return "failure:" + e.Code },
	)

	assert.Equal(t, "success:hello", out)
}

func TestMatch_DispatchesOnFailure(t *testing.T) {
	res := result.Failure[string](result.BankRejectedError("no"))

	out := result.Match(res,
		func(v string) string { return "success:" + v },
		func(e result.Error) string { return "failure:" + e.Code },
	)

	assert.Equal(t, "failure:BANK_REJECTED", out)
}

func TestErrorFactories(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		err     result.Error
		code    string
		message string
	}{
		{"validation", result.ValidationError("bad", nil), result.CodeValidationFailed, "bad"},
		{"not found", result.PaymentNotFoundError(id), result.CodePaymentNotFound, "Payment with id '" + id.String() + "' was not found."},
		{"bank unavailable", result.BankUnavailableError(), result.CodeBankUnavailable, "Unable to process payment at this time. Please retry."},
		{"bank rejected", result.BankRejectedError("Payment was rejected due to invalid request."), result.CodeBankRejected, "Payment was rejected due to invalid request."},
		{"internal", result.InternalError("oops"), result.CodeInternalError, "oops"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.message, tc.err.Message)
		})
	}
}

func TestValidationError_CarriesFieldErrors(t *testing.T) {
	fieldErrors := []result.FieldError{
		{Field: "amount", Message: "Amount must be greater than zero."},
		{Field: "cvv", Message: "CVV is required."},
	}

	err := result.ValidationError("One or more validation errors occurred.", fieldErrors)

	require.Len(t, err.ValidationErrors, 2)
	assert.Equal(t, "amount", err.ValidationErrors[0].Field)
	assert.Equal(t, "cvv", err.ValidationErrors[1].Field)
}
