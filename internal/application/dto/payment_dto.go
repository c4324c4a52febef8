package dto

import (
	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/internal/domain/model"
)

// ProcessPaymentCommand is the raw payment command entering the pipeline.
// Numeric fields are pointers so "absent" and "zero" stay distinguishable
// for the required-field rules.
type ProcessPaymentCommand struct {
	CardNumber  string
	ExpiryMonth *int
	ExpiryYear  *int
	Currency    string
	Amount      *int64
	Cvv         string
}

// GetPaymentQuery requests a single payment by id.
type GetPaymentQuery struct {
	PaymentID uuid.UUID
}

// PaymentResponse is the external payment representation. It never carries
// the PAN, CVV, or authorisation code.
type PaymentResponse struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	CardNumberLastFour string    `json:"cardNumberLastFour"`
	ExpiryMonth        int       `json:"expiryMonth"`
	ExpiryYear         int       `json:"expiryYear"`
	Currency           string    `json:"currency"`
	Amount             int64     `json:"amount"`
}

// PaymentResponseFrom maps a stored payment to its external representation.
func PaymentResponseFrom(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID(),
		Status:             p.Status().String(),
		CardNumberLastFour: p.CardLastFour(),
		ExpiryMonth:        p.ExpiryMonth(),
		ExpiryYear:         p.ExpiryYear(),
		Currency:           p.Amount().Currency().Code(),
		Amount:             p.Amount().Amount(),
	}
}
