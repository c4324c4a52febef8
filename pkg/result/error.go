package result

import (
	"fmt"

	"github.com/google/uuid"
)

// Stable error codes surfaced to API callers.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodePaymentNotFound  = "PAYMENT_NOT_FOUND"
	CodeBankUnavailable  = "BANK_UNAVAILABLE"
	CodeBankRejected     = "BANK_REJECTED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed failure carried by a Result. ValidationErrors is empty
// for every code except CodeValidationFailed.
type Error struct {
	Code             string
	Message          string
	ValidationErrors []FieldError
}

// ValidationError builds a VALIDATION_FAILED error carrying field errors.
func ValidationError(message string, fieldErrors []FieldError) Error {
	return Error{
		Code:             CodeValidationFailed,
		Message:          message,
		ValidationErrors: fieldErrors,
	}
}

// PaymentNotFoundError builds a PAYMENT_NOT_FOUND error for the given id.
func PaymentNotFoundError(paymentID uuid.UUID) Error {
	return Error{
		Code:    CodePaymentNotFound,
		Message: fmt.Sprintf("Payment with id '%s' was not found.", paymentID),
	}
}

// BankUnavailableError builds a BANK_UNAVAILABLE error. Callers should retry later.
func BankUnavailableError() Error {
	return Error{
		Code:    CodeBankUnavailable,
		Message: "Unable to process payment at this time. Please retry.",
	}
}

// BankRejectedError builds a BANK_REJECTED error with the bank's reason.
func BankRejectedError(reason string) Error {
	return Error{
		Code:    CodeBankRejected,
		Message: reason,
	}
}

// InternalError builds an INTERNAL_ERROR.
func InternalError(message string) Error {
	return Error{
		Code:    CodeInternalError,
		Message: message,
	}
}
