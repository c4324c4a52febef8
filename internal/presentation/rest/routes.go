package rest

import (
	"encoding/json"
	"net/http"
)

// RegisterRoutes registers the payment API routes on the given ServeMux.
// The metrics handler is optional.
func RegisterRoutes(mux *http.ServeMux, h *PaymentHandler, metrics http.Handler) {
	mux.HandleFunc("/healthz", healthz)

	mux.HandleFunc("POST /api/payments", h.ProcessPayment)
	mux.HandleFunc("GET /api/payments/{id}", h.GetPayment)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
