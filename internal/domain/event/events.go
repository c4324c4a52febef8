package event

import (
	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/pkg/events"
)

const AggregateTypePayment = "Payment"

// PaymentRecorded is emitted when a payment outcome is recorded. The payload
// carries no PAN or CVV, only the retained last-four fragment.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID        uuid.UUID `json:"payment_id"`
	Status           string    `json:"status"`
	CardLastFour     string    `json:"card_last_four"`
	AmountMinorUnits int64     `json:"amount_minor_units"`
	Currency         string    `json:"currency"`
}

// Event types by recorded status.
const (
	TypePaymentAuthorized = "payment.authorized"
	TypePaymentDeclined   = "payment.declined"
	TypePaymentRejected   = "payment.rejected"
)

func NewPaymentRecorded(eventType string, paymentID uuid.UUID, status, cardLastFour string, amountMinorUnits int64, currency string) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:        events.NewBaseEvent(eventType, paymentID, AggregateTypePayment),
		PaymentID:        paymentID,
		Status:           status,
		CardLastFour:     cardLastFour,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
	}
}
