package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardstream/payment-gateway/internal/application/dto"
	"github.com/cardstream/payment-gateway/internal/application/pipeline"
	"github.com/cardstream/payment-gateway/internal/application/usecase"
	"github.com/cardstream/payment-gateway/internal/application/validation"
	"github.com/cardstream/payment-gateway/internal/domain/port"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
	"github.com/cardstream/payment-gateway/internal/infrastructure/config"
	"github.com/cardstream/payment-gateway/internal/infrastructure/memory"
	"github.com/cardstream/payment-gateway/internal/infrastructure/messaging"
	"github.com/cardstream/payment-gateway/internal/presentation/rest"
	"github.com/cardstream/payment-gateway/pkg/clock"
	pkgkafka "github.com/cardstream/payment-gateway/pkg/kafka"
	"github.com/cardstream/payment-gateway/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting payment-gateway",
		"http_port", cfg.HTTPPort,
		"bank_base_url", cfg.Bank.BaseURL,
	)

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
	}

	// Event publishing is optional: without brokers the gateway runs standalone.
	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = messaging.NewPublisher(producer)
	}

	bankClient := bank.NewClient(cfg.Bank.BaseURL, cfg.Bank.Timeout, logger)
	paymentRepo := memory.NewPaymentRepository()
	validator := validation.NewPaymentValidator(clock.System{})

	processUC := usecase.NewProcessPayment(bankClient, paymentRepo, publisher, logger)
	getUC := usecase.NewGetPayment(paymentRepo, logger)

	// Cross-cutting stages are an explicit ordered list: logging wraps
	// validation, validation wraps the orchestrator, so no side effect can
	// precede a failed validation.
	processHandler := pipeline.Chain(processUC.Execute,
		pipeline.Logging[dto.ProcessPaymentCommand, dto.PaymentResponse](logger, "ProcessPayment"),
		pipeline.Validation[dto.ProcessPaymentCommand, dto.PaymentResponse](logger, validator.Validate),
	)
	getHandler := pipeline.Chain(getUC.Execute,
		pipeline.Logging[dto.GetPaymentQuery, dto.PaymentResponse](logger, "GetPayment"),
	)

	mux := http.NewServeMux()
	rest.RegisterRoutes(mux, rest.NewPaymentHandler(processHandler, getHandler, logger), metricsHandler)

	var handler http.Handler = mux
	handler = rest.LoggingMiddleware(logger)(handler)
	handler = rest.CorrelationMiddleware()(handler)
	handler = rest.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
