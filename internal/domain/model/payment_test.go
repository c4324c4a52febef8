package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/internal/domain/event"
	"github.com/cardstream/payment-gateway/internal/domain/model"
	"github.com/cardstream/payment-gateway/internal/domain/valueobject"
	"github.com/cardstream/payment-gateway/pkg/money"
)

func gbp(t *testing.T, amount int64) money.Money {
	t.Helper()
	m, err := money.New(amount, "GBP")
	require.NoError(t, err)
	return m
}

func TestNewPayment_Authorized(t *testing.T) {
	before := time.Now().UTC()
	p, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "AUTH-1")
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, valueobject.PaymentStatusAuthorized, p.Status())
	assert.Equal(t, "8877", p.CardLastFour())
	assert.Equal(t, 9, p.ExpiryMonth())
	assert.Equal(t, 2030, p.ExpiryYear())
	assert.Equal(t, int64(100), p.Amount().Amount())
	assert.Equal(t, "AUTH-1", p.AuthorisationCode())
	assert.False(t, p.CreatedAt().Before(before))
	assert.False(t, p.CreatedAt().After(after))
}

func TestNewPayment_DeclinedDropsAuthorisationCode(t *testing.T) {
	p, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), valueobject.PaymentStatusDeclined, "AUTH-1")

	require.NoError(t, err)
	assert.Empty(t, p.AuthorisationCode())
}

func TestNewPayment_AuthorizedWithoutCodeIsAccepted(t *testing.T) {
	// The bank may authorize without returning a code; the record stays lenient.
	p, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "")

	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusAuthorized, p.Status())
	assert.Empty(t, p.AuthorisationCode())
}

func TestNewPayment_GuardsCardLastFour(t *testing.T) {
	invalid := []string{"", "887", "88777", "88a7", "????", "88 7"}

	for _, lastFour := range invalid {
		t.Run(lastFour, func(t *testing.T) {
			_, err := model.NewPayment(lastFour, 9, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "")
			assert.Error(t, err)
		})
	}
}

func TestNewPayment_GuardsExpiryMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := model.NewPayment("8877", month, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "")
		assert.Error(t, err)
	}
}

func TestNewPayment_DistinctIDs(t *testing.T) {
	p1, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "X")
	require.NoError(t, err)
	p2, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), valueobject.PaymentStatusAuthorized, "X")
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID(), p2.ID())
}

func TestNewRejectedPayment(t *testing.T) {
	p, err := model.NewRejectedPayment("8877", 9, 2030, gbp(t, 100))

	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusRejected, p.Status())
	assert.Empty(t, p.AuthorisationCode())
}

func TestNewRejectedPayment_StillGuardsCardLastFour(t *testing.T) {
	_, err := model.NewRejectedPayment("12345", 9, 2030, gbp(t, 100))
	assert.Error(t, err)
}

func TestNewPayment_RecordsDomainEvent(t *testing.T) {
	tests := []struct {
		status    valueobject.PaymentStatus
		eventType string
	}{
		{valueobject.PaymentStatusAuthorized, event.TypePaymentAuthorized},
		{valueobject.PaymentStatusDeclined, event.TypePaymentDeclined},
		{valueobject.PaymentStatusRejected, event.TypePaymentRejected},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			p, err := model.NewPayment("8877", 9, 2030, gbp(t, 100), tc.status, "")
			require.NoError(t, err)

			events := p.DomainEvents()
			require.Len(t, events, 1)
			assert.Equal(t, tc.eventType, events[0].EventType())
			assert.Equal(t, p.ID(), events[0].AggregateID())
			assert.Equal(t, event.AggregateTypePayment, events[0].AggregateType())
		})
	}
}
