package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code from the supported allow-list.
type Currency struct {
	code string
}

// Supported currencies. All use two minor-unit digits.
var (
	USD = Currency{"USD"}
	EUR = Currency{"EUR"}
	GBP = Currency{"GBP"}
)

var supported = map[string]Currency{
	"USD": USD,
	"EUR": EUR,
	"GBP": GBP,
}

const minorUnitDigits = 2

// SupportedCodes returns the allow-list in a stable order, for error messages.
func SupportedCodes() []string {
	return []string{"USD", "EUR", "GBP"}
}

// IsSupported reports whether code is on the allow-list, case-insensitively.
func IsSupported(code string) bool {
	_, ok := supported[strings.ToUpper(code)]
	return ok
}

// NewCurrency validates and normalizes a currency code to upper case.
func NewCurrency(code string) (Currency, error) {
	c, ok := supported[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("currency %q is not supported, accepted: %s",
			code, strings.Join(SupportedCodes(), ", "))
	}
	return c, nil
}

// Code returns the upper-case ISO 4217 code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// IsZero reports whether the currency is uninitialized.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// Money is an immutable monetary amount in integer minor units (pence,
// cents). Fields are unexported to enforce immutability.
type Money struct {
	amount   int64
	currency Currency
}

// New creates a Money value. The amount must be strictly positive and the
// currency code must be on the supported allow-list.
func New(amountMinorUnits int64, currencyCode string) (Money, error) {
	if amountMinorUnits <= 0 {
		return Money{}, fmt.Errorf("amount must be greater than zero, got %d", amountMinorUnits)
	}
	cur, err := NewCurrency(currencyCode)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amountMinorUnits, currency: cur}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the value is uninitialized.
func (m Money) IsZero() bool {
	return m.currency.IsZero()
}

// Format renders the amount in major units, e.g. "1.00 GBP". For log and
// display use only; arithmetic stays in minor units.
func (m Money) Format() string {
	major := decimal.New(m.amount, -minorUnitDigits)
	return fmt.Sprintf("%s %s", major.StringFixed(minorUnitDigits), m.currency)
}

// String returns the minor-unit representation, e.g. "GBP 100".
func (m Money) String() string {
	return fmt.Sprintf("%s %d", m.currency, m.amount)
}
