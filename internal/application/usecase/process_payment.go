package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardstream/payment-gateway/internal/application/dto"
	"github.com/cardstream/payment-gateway/internal/domain/model"
	"github.com/cardstream/payment-gateway/internal/domain/port"
	"github.com/cardstream/payment-gateway/internal/domain/valueobject"
	"github.com/cardstream/payment-gateway/pkg/money"
	"github.com/cardstream/payment-gateway/pkg/observability"
	"github.com/cardstream/payment-gateway/pkg/result"
)

const TopicPayments = "gateway.payments"

// ProcessPayment sequences the authorization flow for a command that has
// already passed validation: bank call, entity creation, persistence,
// response. A bank-side failure leaves no stored record.
type ProcessPayment struct {
	bankClient  port.BankClient
	paymentRepo port.PaymentRepository
	publisher   port.EventPublisher // optional, may be nil
	logger      *slog.Logger
}

func NewProcessPayment(
	bankClient port.BankClient,
	paymentRepo port.PaymentRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ProcessPayment {
	return &ProcessPayment{
		bankClient:  bankClient,
		paymentRepo: paymentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *ProcessPayment) Execute(ctx context.Context, cmd dto.ProcessPaymentCommand) result.Result[dto.PaymentResponse] {
	cardLastFour := cmd.CardNumber[len(cmd.CardNumber)-4:]

	uc.logger.InfoContext(ctx, "processing payment",
		"card_last_four", cardLastFour,
		"currency", cmd.Currency,
		"amount", *cmd.Amount,
	)

	bankReq := port.BankPaymentRequest{
		CardNumber: cmd.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", *cmd.ExpiryMonth, *cmd.ExpiryYear),
		Currency:   cmd.Currency,
		Amount:     *cmd.Amount,
		Cvv:        cmd.Cvv,
	}

	bankRes := uc.bankClient.ProcessPayment(ctx, bankReq)
	if bankRes.IsFailure() {
		uc.logger.WarnContext(ctx, "bank returned error",
			"card_last_four", cardLastFour,
			"code", bankRes.Err().Code,
		)
		return result.Failure[dto.PaymentResponse](bankRes.Err())
	}

	auth := bankRes.Value()
	status := valueobject.PaymentStatusDeclined
	if auth.Authorized {
		status = valueobject.PaymentStatusAuthorized
	}

	amount, err := money.New(*cmd.Amount, cmd.Currency)
	if err != nil {
		return result.Failure[dto.PaymentResponse](result.InternalError(err.Error()))
	}

	payment, err := model.NewPayment(cardLastFour, *cmd.ExpiryMonth, *cmd.ExpiryYear, amount, status, auth.AuthorisationCode)
	if err != nil {
		return result.Failure[dto.PaymentResponse](result.InternalError(err.Error()))
	}

	uc.paymentRepo.Add(ctx, payment)
	observability.PaymentsProcessed.WithLabelValues(status.String()).Inc()

	// The outcome is already recorded; a publish failure must not fail the request.
	if uc.publisher != nil {
		if pubErr := uc.publisher.Publish(ctx, TopicPayments, payment.DomainEvents()...); pubErr != nil {
			uc.logger.ErrorContext(ctx, "failed to publish payment events",
				"payment_id", payment.ID(),
				"error", pubErr,
			)
		}
	}

	uc.logger.InfoContext(ctx, "payment completed",
		"payment_id", payment.ID(),
		"status", payment.Status().String(),
		"card_last_four", cardLastFour,
	)

	return result.Success(dto.PaymentResponseFrom(payment))
}
