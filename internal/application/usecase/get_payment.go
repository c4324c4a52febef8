package usecase

import (
	"context"
	"log/slog"

	"github.com/cardstream/payment-gateway/internal/application/dto"
	"github.com/cardstream/payment-gateway/internal/domain/port"
	"github.com/cardstream/payment-gateway/pkg/result"
)

// GetPayment handles retrieval of a single payment by id.
type GetPayment struct {
	paymentRepo port.PaymentRepository
	logger      *slog.Logger
}

func NewGetPayment(paymentRepo port.PaymentRepository, logger *slog.Logger) *GetPayment {
	return &GetPayment{paymentRepo: paymentRepo, logger: logger}
}

func (uc *GetPayment) Execute(ctx context.Context, query dto.GetPaymentQuery) result.Result[dto.PaymentResponse] {
	payment, ok := uc.paymentRepo.GetByID(ctx, query.PaymentID)
	if !ok {
		uc.logger.WarnContext(ctx, "payment not found", "payment_id", query.PaymentID)
		return result.Failure[dto.PaymentResponse](result.PaymentNotFoundError(query.PaymentID))
	}

	return result.Success(dto.PaymentResponseFrom(payment))
}
