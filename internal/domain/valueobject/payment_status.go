package valueobject

import "fmt"

// PaymentStatus represents the final outcome recorded for a payment.
type PaymentStatus struct {
	value string
}

var (
	PaymentStatusAuthorized = PaymentStatus{"Authorized"}
	PaymentStatusDeclined   = PaymentStatus{"Declined"}
	PaymentStatusRejected   = PaymentStatus{"Rejected"}
)

var validStatuses = map[string]PaymentStatus{
	"Authorized": PaymentStatusAuthorized,
	"Declined":   PaymentStatusDeclined,
	"Rejected":   PaymentStatusRejected,
}

// NewPaymentStatus validates and creates a PaymentStatus from a string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	if status, ok := validStatuses[s]; ok {
		return status, nil
	}
	return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
}

// String returns the string representation of the payment status.
func (s PaymentStatus) String() string {
	return s.value
}

// IsZero returns true if the payment status is uninitialized.
func (s PaymentStatus) IsZero() bool {
	return s.value == ""
}
