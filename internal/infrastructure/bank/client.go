package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cardstream/payment-gateway/internal/domain/port"
	"github.com/cardstream/payment-gateway/pkg/observability"
	"github.com/cardstream/payment-gateway/pkg/result"
)

var _ port.BankClient = (*Client)(nil)

// Client speaks the acquiring bank's wire protocol. Every transport and HTTP
// outcome is converted into a typed Result; nothing escapes this boundary as
// a plain error. Log lines carry only the last four card digits.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a bank client. The timeout bounds the whole round-trip;
// context cancellation from the caller also aborts the request.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Wire shapes of the bank protocol. Transient, never persisted.
type paymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

type paymentResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}

// ProcessPayment performs exactly one authorization attempt.
func (c *Client) ProcessPayment(ctx context.Context, req port.BankPaymentRequest) result.Result[port.BankAuthorization] {
	cardLastFour := "????"
	if len(req.CardNumber) >= 4 {
		cardLastFour = req.CardNumber[len(req.CardNumber)-4:]
	}

	c.logger.InfoContext(ctx, "sending payment to bank",
		"card_last_four", cardLastFour,
		"currency", req.Currency,
		"amount", req.Amount,
	)

	body, err := json.Marshal(paymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		Currency:   req.Currency,
		Amount:     req.Amount,
		Cvv:        req.Cvv,
	})
	if err != nil {
		return result.Failure[port.BankAuthorization](result.InternalError(err.Error()))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return result.Failure[port.BankAuthorization](result.InternalError(err.Error()))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	observability.BankRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// Connection failures, DNS errors, timeouts, and caller cancellation
		// all land here.
		c.logger.ErrorContext(ctx, "network error communicating with bank",
			"card_last_four", cardLastFour,
			"error", err,
		)
		observability.BankRequests.WithLabelValues("unavailable").Inc()
		return result.Failure[port.BankAuthorization](result.BankUnavailableError())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return c.decodeSuccess(ctx, resp.Body, cardLastFour)

	case http.StatusServiceUnavailable:
		c.logger.WarnContext(ctx, "bank returned 503", "card_last_four", cardLastFour)
		observability.BankRequests.WithLabelValues("unavailable").Inc()
		return result.Failure[port.BankAuthorization](result.BankUnavailableError())

	case http.StatusBadRequest:
		c.logger.WarnContext(ctx, "bank returned 400", "card_last_four", cardLastFour)
		observability.BankRequests.WithLabelValues("rejected").Inc()
		return result.Failure[port.BankAuthorization](result.BankRejectedError("Payment was rejected due to invalid request."))

	default:
		c.logger.ErrorContext(ctx, "unexpected bank status",
			"status", resp.StatusCode,
			"card_last_four", cardLastFour,
		)
		observability.BankRequests.WithLabelValues("error").Inc()
		return result.Failure[port.BankAuthorization](result.InternalError(
			fmt.Sprintf("Unexpected bank response: %d", resp.StatusCode)))
	}
}

func (c *Client) decodeSuccess(ctx context.Context, body io.Reader, cardLastFour string) result.Result[port.BankAuthorization] {
	raw, err := io.ReadAll(body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		c.logger.ErrorContext(ctx, "bank returned empty body", "card_last_four", cardLastFour)
		observability.BankRequests.WithLabelValues("error").Inc()
		return result.Failure[port.BankAuthorization](result.InternalError("Bank returned an empty response."))
	}

	var bankResp paymentResponse
	if err := json.Unmarshal(raw, &bankResp); err != nil {
		c.logger.ErrorContext(ctx, "bank returned unparseable body", "card_last_four", cardLastFour)
		observability.BankRequests.WithLabelValues("error").Inc()
		return result.Failure[port.BankAuthorization](result.InternalError("Bank returned an empty response."))
	}

	outcome := "declined"
	if bankResp.Authorized {
		outcome = "authorized"
	}
	c.logger.InfoContext(ctx, "bank response",
		"outcome", outcome,
		"card_last_four", cardLastFour,
	)
	observability.BankRequests.WithLabelValues(outcome).Inc()

	auth := port.BankAuthorization{Authorized: bankResp.Authorized}
	if bankResp.AuthorizationCode != nil {
		auth.AuthorisationCode = *bankResp.AuthorizationCode
	}
	return result.Success(auth)
}
