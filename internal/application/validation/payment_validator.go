package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/cardstream/payment-gateway/internal/application/dto"
	"github.com/cardstream/payment-gateway/pkg/clock"
	"github.com/cardstream/payment-gateway/pkg/money"
	"github.com/cardstream/payment-gateway/pkg/result"
)

// PaymentValidator checks a raw payment command against the gateway's rule
// set. Rules within one field stop at the first failure; independent fields
// are all evaluated in the same pass. "Now" comes from the injected clock so
// the date-sensitive rules are deterministic under test.
type PaymentValidator struct {
	clock clock.Clock
}

func NewPaymentValidator(clk clock.Clock) PaymentValidator {
	return PaymentValidator{clock: clk}
}

// Validate returns the ordered, de-duplicated field errors for cmd. An empty
// slice means the command may proceed to the bank.
func (v PaymentValidator) Validate(cmd dto.ProcessPaymentCommand) []result.FieldError {
	var errs []result.FieldError
	add := func(field, message string) {
		errs = append(errs, result.FieldError{Field: field, Message: message})
	}

	switch {
	case cmd.CardNumber == "":
		add("cardNumber", "Card number is required.")
	case len(cmd.CardNumber) < 14 || len(cmd.CardNumber) > 19:
		add("cardNumber", "Card number must be between 14 and 19 digits.")
	case !digitsOnly(cmd.CardNumber):
		add("cardNumber", "Card number must contain digits only.")
	}

	switch {
	case cmd.ExpiryMonth == nil:
		add("expiryMonth", "Expiry month is required.")
	case *cmd.ExpiryMonth < 1 || *cmd.ExpiryMonth > 12:
		add("expiryMonth", "Expiry month must be between 1 and 12.")
	}

	switch {
	case cmd.ExpiryYear == nil:
		add("expiryYear", "Expiry year is required.")
	case *cmd.ExpiryYear < v.clock.Now().Year():
		add("expiryYear", "Expiry year must not be in the past.")
	}

	// Cross-field rule: the card is valid through the last calendar day of
	// its expiry month. Only applies when both parts are plausibly present.
	if cmd.ExpiryMonth != nil && *cmd.ExpiryMonth >= 1 && *cmd.ExpiryMonth <= 12 && cmd.ExpiryYear != nil {
		if cardExpired(*cmd.ExpiryMonth, *cmd.ExpiryYear, v.clock.Now()) {
			add("", "Card has expired.")
		}
	}

	switch {
	case cmd.Currency == "":
		add("currency", "Currency is required.")
	case len(cmd.Currency) != 3:
		add("currency", "Currency must be a 3-letter ISO code.")
	case !money.IsSupported(cmd.Currency):
		add("currency", fmt.Sprintf("Currency '%s' is not supported. Supported currencies are %s.",
			cmd.Currency, strings.Join(money.SupportedCodes(), ", ")))
	}

	switch {
	case cmd.Amount == nil:
		add("amount", "Amount is required.")
	case *cmd.Amount <= 0:
		add("amount", "Amount must be greater than zero.")
	}

	switch {
	case cmd.Cvv == "":
		add("cvv", "CVV is required.")
	case len(cmd.Cvv) < 3 || len(cmd.Cvv) > 4:
		add("cvv", "CVV must be 3 or 4 digits.")
	case !digitsOnly(cmd.Cvv):
		add("cvv", "CVV must contain digits only.")
	}

	return dedupe(errs)
}

func cardExpired(month, year int, now time.Time) bool {
	// Day 0 of the following month is the last day of the expiry month.
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return lastDay.Before(today)
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func dedupe(errs []result.FieldError) []result.FieldError {
	if len(errs) < 2 {
		return errs
	}
	seen := make(map[result.FieldError]struct{}, len(errs))
	out := errs[:0]
	for _, e := range errs {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
