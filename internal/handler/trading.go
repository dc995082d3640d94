package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/service"
)

// TradingHandler handles HTTP requests for trading endpoints.
type TradingHandler struct {
	tradingSvc *service.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingSvc *service.TradingService) *TradingHandler {
	return &TradingHandler{tradingSvc: tradingSvc}
}

// tradeRequest is the JSON request body for buy and sell.
type tradeRequest struct {
	UserID   int64  `json:"userId"`
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
}

// positionResponse is a single holding in the portfolio response.
type positionResponse struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// portfolioResponse is the JSON response for GET /api/trading/portfolio/{userId}.
type portfolioResponse struct {
	UserID   int64              `json:"userId"`
	Balance  decimal.Decimal    `json:"balance"`
	Holdings []positionResponse `json:"holdings"`
}

// tradeResponse is a single entry in the trade feed. The field is
// named "type" rather than "side" because the UI reads it that way.
type tradeResponse struct {
	Type      string          `json:"type"`
	Symbol    string          `json:"symbol"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Timestamp string          `json:"timestamp"`
}

// Buy handles POST /api/trading/buy.
func (h *TradingHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.tradingSvc.Buy(req.UserID, req.Symbol, req.Quantity); err != nil {
		mapTradeError(w, err)
		return
	}
	WriteText(w, http.StatusOK, "Buy successful")
}

// Sell handles POST /api/trading/sell.
func (h *TradingHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.tradingSvc.Sell(req.UserID, req.Symbol, req.Quantity); err != nil {
		mapTradeError(w, err)
		return
	}
	WriteText(w, http.StatusOK, "Sell successful")
}

// GetPortfolio handles GET /api/trading/portfolio/{userId}.
func (h *TradingHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	view, err := h.tradingSvc.Portfolio(userID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	holdings := make([]positionResponse, len(view.Holdings))
	for i, p := range view.Holdings {
		holdings[i] = positionResponse{
			Symbol:       p.Symbol,
			Quantity:     p.Quantity,
			AveragePrice: p.AveragePrice,
		}
	}

	WriteJSON(w, http.StatusOK, portfolioResponse{
		UserID:   view.UserID,
		Balance:  view.Balance,
		Holdings: holdings,
	})
}

// Feed handles GET /api/trading/feed.
func (h *TradingHandler) Feed(w http.ResponseWriter, r *http.Request) {
	trades := h.tradingSvc.Feed()

	resp := make([]tradeResponse, len(trades))
	for i, t := range trades {
		resp[i] = tradeResponse{
			Type:      string(t.Side),
			Symbol:    t.Symbol,
			Quantity:  t.Quantity,
			Price:     t.Price,
			Timestamp: t.ExecutedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// mapTradeError maps trade execution errors to HTTP responses. The
// messages are fixed strings the UI surfaces verbatim.
func mapTradeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		WriteError(w, http.StatusBadRequest, "Insufficient funds")
	case errors.Is(err, domain.ErrInsufficientHoldings):
		WriteError(w, http.StatusBadRequest, "Insufficient holdings")
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrStockNotFound):
		WriteError(w, http.StatusBadRequest, "Invalid request")
	default:
		WriteError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
