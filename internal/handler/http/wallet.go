package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.walletStatus(h.services.WalletService.IsOpen()), http.StatusOK)
}

func (h *Handler) checkWallet(w http.ResponseWriter, r *http.Request) {
	open, err := h.services.WalletService.RefreshOpen(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.checkWallet")
		return
	}

	utils.WriteJSON(w, h.walletStatus(open), http.StatusOK)
}

func (h *Handler) joinFederation(w http.ResponseWriter, r *http.Request) {
	var req models.JoinFederationRequest
	if !h.decode(w, r, &req, "*Handler.joinFederation") {
		return
	}

	result, err := h.services.WalletService.JoinFederation(r.Context(), req.InviteCode)
	if err != nil {
		h.writeError(w, r, err, "*Handler.joinFederation")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) redeemEcash(w http.ResponseWriter, r *http.Request) {
	var req models.RedeemEcashRequest
	if !h.decode(w, r, &req, "*Handler.redeemEcash") {
		return
	}

	result, err := h.services.MintService.RedeemEcash(r.Context(), req.Notes)
	if err != nil {
		h.writeError(w, r, err, "*Handler.redeemEcash")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) payInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.PayInvoiceRequest
	if !h.decode(w, r, &req, "*Handler.payInvoice") {
		return
	}

	result, err := h.services.LightningService.PayInvoice(r.Context(), req.Invoice)
	if err != nil {
		h.writeError(w, r, err, "*Handler.payInvoice")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if !h.decode(w, r, &req, "*Handler.createInvoice") {
		return
	}

	invoice, err := h.services.LightningService.CreateInvoice(r.Context(), req.AmountSats, req.Description)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createInvoice")
		return
	}

	utils.WriteJSON(w, invoice, http.StatusCreated)
}

func (h *Handler) walletStatus(open bool) models.WalletStatus {
	status := models.WalletStatus{Open: open}
	if balance, ok := h.services.BalanceService.Balance(); ok {
		status.BalanceKnown = true
		status.BalanceSats = balance.Sats()
		status.BalanceMsat = balance.Msats()
	}
	return status
}

// decode reads the JSON body into dst and answers 400 when it cannot.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, funcName string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), funcName)
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Msg("debug request failed")
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
