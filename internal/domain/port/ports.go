package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/internal/domain/model"
	"github.com/cardstream/payment-gateway/pkg/events"
	"github.com/cardstream/payment-gateway/pkg/result"
)

// PaymentRepository defines persistence operations for payments. Records are
// immutable and permanent for the life of the process; there is no update or
// delete. A store failure is an operational emergency, not a typed business
// error, so Add has no error return.
type PaymentRepository interface {
	// Add inserts the payment if its id is absent.
	Add(ctx context.Context, payment model.Payment)
	// GetByID retrieves a payment. The second return is false on a miss.
	GetByID(ctx context.Context, id uuid.UUID) (model.Payment, bool)
}

// BankPaymentRequest is the authorization request handed to the acquiring bank.
type BankPaymentRequest struct {
	CardNumber string
	ExpiryDate string // zero-padded MM/YYYY
	Currency   string
	Amount     int64
	Cvv        string
}

// BankAuthorization is the bank's verdict on a single authorization attempt.
type BankAuthorization struct {
	Authorized        bool
	AuthorisationCode string
}

// BankClient performs exactly one outbound authorization attempt per call.
// Every transport and HTTP outcome is converted into a typed Result; no
// fault propagates past this boundary.
type BankClient interface {
	ProcessPayment(ctx context.Context, req BankPaymentRequest) result.Result[BankAuthorization]
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
