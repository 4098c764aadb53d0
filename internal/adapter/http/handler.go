package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/port"
)

// Options toggles optional routes.
type Options struct {
	// AllowDeposits exposes POST /api/v1/accounts/me/deposits.
	AllowDeposits bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Every /api/v1 route requires a bearer token checked by the
// Authenticator; the resulting identity is the only caller identity the
// use case ever sees.
type Handler struct {
	svc    port.CampaignUseCase
	authn  port.Authenticator
	logger *slog.Logger
	opts   Options
	router chi.Router
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(svc port.CampaignUseCase, authn port.Authenticator, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, authn: authn, logger: logger, opts: opts}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Post("/contributions", h.handleContribute)
			r.Post("/withdrawal", h.handleWithdraw)
			r.Get("/transfers", h.handleHistory)
		})

		r.Get("/accounts/me", h.handleBalance)
		if opts.AllowDeposits {
			r.Post("/accounts/me/deposits", h.handleDeposit)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
