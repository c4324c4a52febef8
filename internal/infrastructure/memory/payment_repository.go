package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/internal/domain/model"
	"github.com/cardstream/payment-gateway/internal/domain/port"
)

var _ port.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository holds payments in process memory, keyed by id. Safe for
// concurrent insert and lookup. Records survive for the life of the process.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]model.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[uuid.UUID]model.Payment),
	}
}

// Add inserts the payment if its id is absent. Ids are never reused, so a
// repeated insert of the same id is a no-op rather than an overwrite.
func (r *PaymentRepository) Add(_ context.Context, payment model.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID()]; exists {
		return
	}
	r.payments[payment.ID()] = payment
}

// GetByID returns the payment for id, or false on a miss.
func (r *PaymentRepository) GetByID(_ context.Context, id uuid.UUID) (model.Payment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	return payment, ok
}
