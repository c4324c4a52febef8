package rest_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/payment-gateway/internal/presentation/rest"
)

func TestRecoveryMiddleware_ConvertsPanicTo500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("store failure after authorization")
	})
	handler := rest.RecoveryMiddleware(slog.New(slog.DiscardHandler))(panicking)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/payments", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.Equal(t, "An unexpected error occurred.", body["message"])
}

func TestRecoveryMiddleware_PassesThroughNormally(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rest.RecoveryMiddleware(slog.New(slog.DiscardHandler))(ok)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCorrelationIDFromContext_PropagatesToHandler(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = rest.CorrelationIDFromContext(r.Context())
	})
	handler := rest.CorrelationMiddleware()(inner)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(rest.CorrelationHeader, "corr-abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "corr-abc", seen)
}
