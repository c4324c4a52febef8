package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/internal/domain/valueobject"
)

func TestNewPaymentStatus_ValidStatuses(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.PaymentStatus
	}{
		{"Authorized", valueobject.PaymentStatusAuthorized},
		{"Declined", valueobject.PaymentStatusDeclined},
		{"Rejected", valueobject.PaymentStatusRejected},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			status, err := valueobject.NewPaymentStatus(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
			assert.Equal(t, tc.input, status.String())
			assert.False(t, status.IsZero())
		})
	}
}

func TestNewPaymentStatus_InvalidStatus(t *testing.T) {
	invalidStatuses := []string{"", "AUTHORIZED", "authorized", "Settled", "Pending"}

	for _, input := range invalidStatuses {
		t.Run(input, func(t *testing.T) {
			_, err := valueobject.NewPaymentStatus(input)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid payment status")
		})
	}
}

func TestPaymentStatus_IsZero(t *testing.T) {
	var zeroStatus valueobject.PaymentStatus
	assert.True(t, zeroStatus.IsZero())
	assert.Equal(t, "", zeroStatus.String())
}
