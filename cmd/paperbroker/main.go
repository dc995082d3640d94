package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/config"
	"github.com/paperbroker/internal/handler"
	"github.com/paperbroker/internal/marketdata"
	"github.com/paperbroker/internal/service"
	"github.com/paperbroker/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Instantiate stores.
	accounts := store.NewAccountStore()
	ledger := store.NewLedger()
	holdings := store.NewHoldingsBook()
	trades := store.NewTradeLog()

	// Market data.
	quotes := marketdata.NewQuoteStore(marketdata.DefaultStocks())
	ticker := marketdata.NewTicker(cfg.TickInterval, quotes)

	// Services.
	userSvc := service.NewUserService(accounts, ledger, cfg.StartingBalance)
	tradingSvc := service.NewTradingService(accounts, ledger, holdings, trades, quotes, cfg.FeedLimit)
	marketSvc := service.NewMarketService(quotes)

	if cfg.SeedDemoData {
		if err := seedDemoData(userSvc, holdings); err != nil {
			logger.Error("failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("demo data seeded", slog.String("username", "demo"))
	}

	// Router.
	router := handler.NewRouter(userSvc, tradingSvc, marketSvc, logger)

	// Start the price ticker with a cancellable context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticker.Start(ctx)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown: stop HTTP server, cancel context (stops the ticker).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cancel()

	logger.Info("server stopped")
}

// seedDemoData registers the demo user with its pre-existing holdings.
// The holdings are applied directly to the book, not bought, so the
// demo balance stays at the starting amount.
func seedDemoData(userSvc *service.UserService, holdings *store.HoldingsBook) error {
	view, err := userSvc.Register("demo", "password")
	if err != nil {
		return err
	}
	holdings.ApplyBuy(view.Account.ID, "RELIANCE", 10, decimal.NewFromFloat(2400.00))
	holdings.ApplyBuy(view.Account.ID, "TCS", 5, decimal.NewFromFloat(3450.00))
	return nil
}
