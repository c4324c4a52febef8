package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/internal/domain/event"
	"github.com/cardstream/payment-gateway/internal/domain/valueobject"
	"github.com/cardstream/payment-gateway/pkg/events"
	"github.com/cardstream/payment-gateway/pkg/money"
)

// Payment is the root aggregate of the gateway. It records the outcome of a
// single authorization attempt and is immutable once created. Only the last
// four digits of the card are ever retained.
type Payment struct {
	id                uuid.UUID
	status            valueobject.PaymentStatus
	cardLastFour      string
	expiryMonth       int
	expiryYear        int
	amount            money.Money
	authorisationCode string
	createdAt         time.Time
	domainEvents      []events.DomainEvent
}

// NewPayment creates a payment record with a fresh id. The authorisation
// code is only meaningful for authorized payments; the bank may legitimately
// authorize without returning one, so no code is accepted silently.
func NewPayment(
	cardLastFour string,
	expiryMonth int,
	expiryYear int,
	amount money.Money,
	status valueobject.PaymentStatus,
	authorisationCode string,
) (Payment, error) {
	if err := guardCardLastFour(cardLastFour); err != nil {
		return Payment{}, err
	}
	if expiryMonth < 1 || expiryMonth > 12 {
		return Payment{}, fmt.Errorf("expiry month must be between 1 and 12, got %d", expiryMonth)
	}
	if status.IsZero() {
		return Payment{}, fmt.Errorf("payment status is required")
	}
	if status != valueobject.PaymentStatusAuthorized {
		authorisationCode = ""
	}

	p := Payment{
		id:                uuid.New(),
		status:            status,
		cardLastFour:      cardLastFour,
		expiryMonth:       expiryMonth,
		expiryYear:        expiryYear,
		amount:            amount,
		authorisationCode: authorisationCode,
		createdAt:         time.Now().UTC(),
	}

	p.domainEvents = append(p.domainEvents, event.NewPaymentRecorded(
		eventTypeFor(status), p.id, status.String(), cardLastFour, amount.Amount(), amount.Currency().Code(),
	))

	return p, nil
}

// NewRejectedPayment creates a record for a payment that never reached the
// bank. No caller currently produces Rejected payments; the trigger condition
// is undefined upstream, so the path exists but is not wired to a rule.
func NewRejectedPayment(
	cardLastFour string,
	expiryMonth int,
	expiryYear int,
	amount money.Money,
) (Payment, error) {
	return NewPayment(cardLastFour, expiryMonth, expiryYear, amount, valueobject.PaymentStatusRejected, "")
}

func eventTypeFor(status valueobject.PaymentStatus) string {
	switch status {
	case valueobject.PaymentStatusAuthorized:
		return event.TypePaymentAuthorized
	case valueobject.PaymentStatusDeclined:
		return event.TypePaymentDeclined
	default:
		return event.TypePaymentRejected
	}
}

func guardCardLastFour(value string) error {
	if len(value) != 4 {
		return fmt.Errorf("card last four must be exactly 4 digits")
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return fmt.Errorf("card last four must be exactly 4 digits")
		}
	}
	return nil
}

// Accessors

func (p Payment) ID() uuid.UUID                      { return p.id }
func (p Payment) Status() valueobject.PaymentStatus  { return p.status }
func (p Payment) CardLastFour() string               { return p.cardLastFour }
func (p Payment) ExpiryMonth() int                   { return p.expiryMonth }
func (p Payment) ExpiryYear() int                    { return p.expiryYear }
func (p Payment) Amount() money.Money                { return p.amount }
func (p Payment) AuthorisationCode() string          { return p.authorisationCode }
func (p Payment) CreatedAt() time.Time               { return p.createdAt }
func (p Payment) DomainEvents() []events.DomainEvent { return p.domainEvents }
