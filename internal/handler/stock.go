package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/service"
)

// StockHandler handles HTTP requests for stock endpoints.
type StockHandler struct {
	marketSvc *service.MarketService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(marketSvc *service.MarketService) *StockHandler {
	return &StockHandler{marketSvc: marketSvc}
}

// stockResponse is the JSON shape of a quote.
type stockResponse struct {
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	CurrentPrice     decimal.Decimal `json:"currentPrice"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	Type             string          `json:"type"`
}

// historyPointResponse is a single day of generated price history.
type historyPointResponse struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// depthLevelResponse is one row of the synthetic depth ladder.
type depthLevelResponse struct {
	Price decimal.Decimal `json:"price"`
	Size  int64           `json:"size"`
	Total int64           `json:"total"`
}

// bookResponse is the JSON response for GET /api/stocks/book/{symbol}.
type bookResponse struct {
	Symbol string               `json:"symbol"`
	Bids   []depthLevelResponse `json:"bids"`
	Asks   []depthLevelResponse `json:"asks"`
}

func toStockResponse(s domain.Stock) stockResponse {
	return stockResponse{
		Symbol:           s.Symbol,
		Name:             s.Name,
		CurrentPrice:     s.CurrentPrice,
		ChangePercentage: s.ChangePercentage,
		Type:             s.Type,
	}
}

// ListStocks handles GET /api/stocks/all.
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	stocks := h.marketSvc.AllStocks()
	resp := make([]stockResponse, len(stocks))
	for i, s := range stocks {
		resp[i] = toStockResponse(s)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetQuote handles GET /api/stocks/quote/{symbol}.
func (h *StockHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	stock, err := h.marketSvc.Quote(chi.URLParam(r, "symbol"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "Stock not found")
		return
	}
	WriteJSON(w, http.StatusOK, toStockResponse(stock))
}

// GetHistory handles GET /api/stocks/history/{symbol}/{timeframe}.
func (h *StockHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	timeframe := chi.URLParam(r, "timeframe")

	points, err := h.marketSvc.History(symbol, timeframe)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Stock not found")
		return
	}

	resp := make([]historyPointResponse, len(points))
	for i, p := range points {
		resp[i] = historyPointResponse{Date: p.Date, Price: p.Price}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetBook handles GET /api/stocks/book/{symbol}.
func (h *StockHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	depth, err := h.marketSvc.Depth(chi.URLParam(r, "symbol"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "Stock not found")
		return
	}

	bids := make([]depthLevelResponse, len(depth.Bids))
	for i, l := range depth.Bids {
		bids[i] = depthLevelResponse{Price: l.Price, Size: l.Size, Total: l.Total}
	}
	asks := make([]depthLevelResponse, len(depth.Asks))
	for i, l := range depth.Asks {
		asks[i] = depthLevelResponse{Price: l.Price, Size: l.Size, Total: l.Total}
	}

	WriteJSON(w, http.StatusOK, bookResponse{
		Symbol: depth.Symbol,
		Bids:   bids,
		Asks:   asks,
	})
}
