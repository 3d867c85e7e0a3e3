// Package handlers assembles the HTTP surface: one sub-package per
// resource, wired onto a chi router here.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/horizonfin/banking/pkg/balance"
	"github.com/horizonfin/banking/pkg/handlers/connections"
	"github.com/horizonfin/banking/pkg/handlers/transactions"
	"github.com/horizonfin/banking/pkg/handlers/transfers"
	"github.com/horizonfin/banking/pkg/handlers/webhooks"
	"github.com/horizonfin/banking/pkg/handlers/websockets"
	"github.com/horizonfin/banking/pkg/middleware"
	"github.com/horizonfin/banking/pkg/scheduler"
	"github.com/horizonfin/banking/pkg/secrets"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/sync"
	"github.com/horizonfin/banking/pkg/transfer"
)

// Deps bundles the dependencies of the HTTP API.
type Deps struct {
	Store         storage.Storage
	Keeper        *secrets.Keeper
	Syncer        sync.Syncer
	Balances      balance.Reader
	Transfers     transfer.Service
	Queue         scheduler.EventQueue
	WebhookSecret string
	Logger        *slog.Logger
}

// NewRouter builds the chi router for the whole API.
func NewRouter(deps Deps) *chi.Mux {
	connectionsHandler := connections.NewHandler(deps.Store, deps.Keeper, deps.Balances, deps.Logger)
	transactionsHandler := transactions.NewHandler(deps.Store, deps.Syncer, deps.Logger)
	transfersHandler := transfers.NewHandler(deps.Transfers, deps.Store, deps.Logger)
	webhooksHandler := webhooks.NewHandler(deps.WebhookSecret, deps.Queue, deps.Transfers, deps.Logger)
	websocketsHandler := websockets.NewHandler(deps.Store)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(deps.Logger))

	router.Route("/banks", func(r chi.Router) {
		r.Post("/", connectionsHandler.CreateBank)
		r.Get("/", connectionsHandler.ListBanks)
		r.Get("/{bankId}", func(w http.ResponseWriter, r *http.Request) {
			connectionsHandler.GetBank(w, r, chi.URLParam(r, "bankId"))
		})
		r.Get("/{bankId}/accounts", func(w http.ResponseWriter, r *http.Request) {
			connectionsHandler.GetBankBalances(w, r, chi.URLParam(r, "bankId"))
		})
	})

	router.Get("/transactions", transactionsHandler.ListTransactions)
	router.Post("/transactions/{bankId}/sync", func(w http.ResponseWriter, r *http.Request) {
		transactionsHandler.SyncBank(w, r, chi.URLParam(r, "bankId"))
	})

	router.Route("/transfers", func(r chi.Router) {
		r.Post("/", transfersHandler.CreateTransfer)
		r.Get("/", transfersHandler.ListTransfers)
		r.Get("/{transferId}", func(w http.ResponseWriter, r *http.Request) {
			transfersHandler.GetTransfer(w, r, chi.URLParam(r, "transferId"))
		})
		r.Post("/{transferId}/cancel", func(w http.ResponseWriter, r *http.Request) {
			transfersHandler.CancelTransfer(w, r, chi.URLParam(r, "transferId"))
		})
	})

	router.Post("/p2p/transfers", transfersHandler.CreateP2PTransfer)

	router.Post("/webhooks/dwolla", webhooksHandler.HandleRailEvent)

	// Local-development WebSocket endpoint; deployed environments use the
	// API Gateway WebSocket routes instead.
	router.Get("/ws", websocketsHandler.ServeHTTP)

	return router
}
