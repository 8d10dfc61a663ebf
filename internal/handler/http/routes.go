package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/debug/version", h.getVersion)

	router.Get("/debug/wallet", h.getWallet)
	router.Post("/debug/wallet/check", h.checkWallet)
	router.Post("/debug/wallet/join", h.joinFederation)
	router.Post("/debug/wallet/redeem", h.redeemEcash)
	router.Post("/debug/wallet/pay", h.payInvoice)
	router.Post("/debug/wallet/invoice", h.createInvoice)

	router.Get("/debug/activity", h.listActivity)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
