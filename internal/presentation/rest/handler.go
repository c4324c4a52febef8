package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/google/uuid"

	"github.com/cardstream/payment-gateway/internal/application/dto"
	"github.com/cardstream/payment-gateway/internal/application/pipeline"
	"github.com/cardstream/payment-gateway/pkg/result"
)

// PaymentHandler exposes the payment operations over HTTP. The pipeline
// handlers it delegates to are composed at startup.
type PaymentHandler struct {
	processPayment pipeline.Handler[dto.ProcessPaymentCommand, dto.PaymentResponse]
	getPayment     pipeline.Handler[dto.GetPaymentQuery, dto.PaymentResponse]
	logger         *slog.Logger
}

func NewPaymentHandler(
	processPayment pipeline.Handler[dto.ProcessPaymentCommand, dto.PaymentResponse],
	getPayment pipeline.Handler[dto.GetPaymentQuery, dto.PaymentResponse],
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		processPayment: processPayment,
		getPayment:     getPayment,
		logger:         logger,
	}
}

// processPaymentRequest is the inbound wire shape. Every field is a pointer
// so missing values reach the validator as "absent" rather than zero.
type processPaymentRequest struct {
	CardNumber  *string `json:"cardNumber"`
	ExpiryMonth *int    `json:"expiryMonth"`
	ExpiryYear  *int    `json:"expiryYear"`
	Currency    *string `json:"currency"`
	Amount      *int64  `json:"amount"`
	Cvv         *string `json:"cvv"`
}

func (req processPaymentRequest) toCommand() dto.ProcessPaymentCommand {
	cmd := dto.ProcessPaymentCommand{
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Amount:      req.Amount,
	}
	if req.CardNumber != nil {
		cmd.CardNumber = *req.CardNumber
	}
	if req.Currency != nil {
		cmd.Currency = *req.Currency
	}
	if req.Cvv != nil {
		cmd.Cvv = *req.Cvv
	}
	return cmd
}

type errorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []result.FieldError `json:"errors,omitempty"`
}

// ProcessPayment handles POST /api/payments.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "malformed payment request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    result.CodeValidationFailed,
			Message: "One or more validation errors occurred.",
			Errors:  []result.FieldError{decodeFieldError(err)},
		})
		return
	}

	res := h.processPayment(r.Context(), req.toCommand())
	writeResult(w, res)
}

// GetPayment handles GET /api/payments/{id}.
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Code:    result.CodePaymentNotFound,
			Message: fmt.Sprintf("Payment with id '%s' was not found.", r.PathValue("id")),
		})
		return
	}

	res := h.getPayment(r.Context(), dto.GetPaymentQuery{PaymentID: id})
	writeResult(w, res)
}

// decodeFieldError turns a JSON decode failure into a single field error
// targeting the offending field, or "body" when no field is identifiable.
func decodeFieldError(err error) result.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return result.FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Field must be a valid %s.", typeHint(typeErr.Type)),
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return result.FieldError{
			Field:   "body",
			Message: "The request body is not valid JSON. Check numeric fields for leading zeros.",
		}
	}

	if errors.Is(err, io.EOF) {
		return result.FieldError{Field: "body", Message: "A request body is required."}
	}

	return result.FieldError{
		Field:   "body",
		Message: "The request body is invalid. Check that all fields are correctly formatted.",
	}
}

func typeHint(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return "integer (decimals are not allowed)"
	case reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}

func writeResult(w http.ResponseWriter, res result.Result[dto.PaymentResponse]) {
	result.Match(res,
		func(resp dto.PaymentResponse) struct{} {
			writeJSON(w, http.StatusOK, resp)
			return struct{}{}
		},
		func(err result.Error) struct{} {
			writeError(w, err)
			return struct{}{}
		},
	)
}

func writeError(w http.ResponseWriter, err result.Error) {
	switch err.Code {
	case result.CodeValidationFailed, result.CodeBankRejected:
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: err.Code, Message: err.Message, Errors: err.ValidationErrors})
	case result.CodePaymentNotFound:
		writeJSON(w, http.StatusNotFound, errorResponse{Code: err.Code, Message: err.Message})
	case result.CodeBankUnavailable:
		w.WriteHeader(http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
