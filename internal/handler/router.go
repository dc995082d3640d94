package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/paperbroker/internal/service"
)

// NewRouter creates a chi router with all routes registered, request
// logging, and the permissive CORS handling the browser UI needs.
func NewRouter(
	userSvc *service.UserService,
	tradingSvc *service.TradingService,
	marketSvc *service.MarketService,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(allowCORS)

	// Create handlers.
	userH := NewUserHandler(userSvc)
	tradingH := NewTradingHandler(tradingSvc)
	stockH := NewStockHandler(marketSvc)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Stock routes.
		r.Get("/stocks/all", stockH.ListStocks)
		r.Get("/stocks/quote/{symbol}", stockH.GetQuote)
		r.Get("/stocks/history/{symbol}/{timeframe}", stockH.GetHistory)
		r.Get("/stocks/book/{symbol}", stockH.GetBook)

		// User routes.
		r.Post("/users/register", userH.Register)
		r.Get("/users/username/{username}", userH.GetByUsername)
		r.Get("/users", userH.List)

		// Trading routes.
		r.Post("/trading/buy", tradingH.Buy)
		r.Post("/trading/sell", tradingH.Sell)
		r.Get("/trading/portfolio/{userId}", tradingH.GetPortfolio)
		r.Get("/trading/feed", tradingH.Feed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not Found")
	})

	return r
}

// requestLogging returns middleware that logs each request's method,
// path, status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// allowCORS sets the permissive CORS headers on every response and
// answers OPTIONS preflights with 204 before routing, matching the
// original backend.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
