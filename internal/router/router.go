package router

import (
	"net/http"

	"product-catalog/internal/handler"
	"product-catalog/internal/metrics"
	"product-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	pageConfigHandler *handler.PageConfigHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/api/products", productHandler.List)
	mux.HandleFunc("/api/products/refresh", productHandler.Refresh)

	mux.HandleFunc("/api/page-config", pageConfigHandler.Handle)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
