package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/internal/domain/model"
	"github.com/cardstream/payment-gateway/internal/domain/valueobject"
	"github.com/cardstream/payment-gateway/internal/infrastructure/memory"
	"github.com/cardstream/payment-gateway/pkg/money"
)

func newPayment(t *testing.T) model.Payment {
	t.Helper()
	amount, err := money.New(100, "GBP")
	require.NoError(t, err)
	p, err := model.NewPayment("8877", 9, 2030, amount, valueobject.PaymentStatusAuthorized, "AUTH-1")
	require.NoError(t, err)
	return p
}

func TestAddAndGetByID(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()
	payment := newPayment(t)

	repo.Add(ctx, payment)

	got, ok := repo.GetByID(ctx, payment.ID())
	require.True(t, ok)
	assert.Equal(t, payment.ID(), got.ID())
	assert.Equal(t, payment.Status(), got.Status())
	assert.Equal(t, payment.AuthorisationCode(), got.AuthorisationCode())
}

func TestGetByID_Miss(t *testing.T) {
	repo := memory.NewPaymentRepository()

	_, ok := repo.GetByID(context.Background(), uuid.New())
	assert.False(t, ok)
}

func TestAdd_RepeatedIDIsNoOp(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()
	payment := newPayment(t)

	repo.Add(ctx, payment)
	repo.Add(ctx, payment)

	got, ok := repo.GetByID(ctx, payment.ID())
	require.True(t, ok)
	assert.Equal(t, payment.ID(), got.ID())
}

func TestConcurrentAccess(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()

	const writers = 50
	ids := make([]uuid.UUID, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		payment := newPayment(t)
		ids[i] = payment.ID()

		wg.Add(2)
		go func(p model.Payment) {
			defer wg.Done()
			repo.Add(ctx, p)
		}(payment)
		go func(id uuid.UUID) {
			defer wg.Done()
			repo.GetByID(ctx, id)
		}(payment.ID())
	}
	wg.Wait()

	for i, id := range ids {
		_, ok := repo.GetByID(ctx, id)
		assert.True(t, ok, fmt.Sprintf("payment %d missing after concurrent writes", i))
	}
}
