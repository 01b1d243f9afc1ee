package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/expense-tracker/internal/api/handlers"
	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/display"
	"github.com/baharkarakas/expense-tracker/internal/metrics"
	"github.com/baharkarakas/expense-tracker/internal/middleware"
	"github.com/baharkarakas/expense-tracker/internal/services"
)

var _ handlers.Ledger = (*services.LedgerService)(nil)

func NewRouter(cfg config.Config, l handlers.Ledger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// ---------- browser page ----------
	web := handlers.NewWebHandler(l, display.NewMoney(cfg.Currency))
	r.Get("/", web.Index)
	r.Post("/initial-amount", web.SetInitialAmount)
	r.Post("/transactions", web.AddTransaction)
	r.Post("/clear", web.Clear)

	// ---------- JSON ----------
	api := handlers.NewLedgerHandler(l)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ledger", api.Get)
		r.Delete("/ledger", api.Clear)
		r.Put("/ledger/initial-amount", api.SetInitialAmount)
		r.Post("/ledger/transactions", api.AddTransaction)
	})

	return r
}
