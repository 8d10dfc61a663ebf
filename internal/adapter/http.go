package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/go-resty/resty/v2"
)

// defaultInvoiceExpiry is the invoice lifetime in seconds used when the
// caller does not set one.
const defaultInvoiceExpiry = 3600

type httpWalletAdapter struct {
	client *utils.HTTPClient

	password     string
	federationID string

	mu        sync.Mutex
	gatewayID string

	logger *logger.Logger
}

// NewHTTPWalletAdapter constructs an HTTP/REST implementation of
// [WalletAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. A configured gateway id is used for
// every Lightning call; otherwise the first gateway the daemon reports is
// picked on demand and cached.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPWalletAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (WalletAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpWalletAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		password:     strings.TrimSpace(adapterCfg.Password),
		federationID: strings.TrimSpace(adapterCfg.FederationID),
		gatewayID:    strings.TrimSpace(adapterCfg.GatewayID),
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Info implements [WalletAdapter] via GET /v2/admin/info. The map keys are
// copied into [models.FederationInfo.FederationID].
func (h *httpWalletAdapter) Info(ctx context.Context) (models.WalletInfo, error) {
	resp, err := h.request(ctx).Get("/v2/admin/info")
	if err != nil {
		return nil, fmt.Errorf("info request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	info := models.WalletInfo{}
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("decode info response: %w", err)
	}
	for id, federation := range info {
		federation.FederationID = id
		info[id] = federation
	}

	return info, nil
}

// Join implements [WalletAdapter] via POST /v2/admin/join.
func (h *httpWalletAdapter) Join(ctx context.Context, req models.JoinRequest) (models.JoinResult, error) {
	var result models.JoinResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/v2/admin/join")
	if err != nil {
		return models.JoinResult{}, fmt.Errorf("join request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JoinResult{}, err
	}

	return result, nil
}

// Reissue implements [WalletAdapter] via POST /v2/mint/reissue.
func (h *httpWalletAdapter) Reissue(ctx context.Context, req models.ReissueRequest) (models.RedeemResult, error) {
	var result models.RedeemResult
	if req.FederationID == "" {
		req.FederationID = h.federationID
	}

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/v2/mint/reissue")
	if err != nil {
		return models.RedeemResult{}, fmt.Errorf("reissue request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RedeemResult{}, err
	}

	return result, nil
}

// CreateInvoice implements [WalletAdapter] via POST /v2/ln/invoice.
func (h *httpWalletAdapter) CreateInvoice(ctx context.Context, req models.InvoiceRequest) (models.Invoice, error) {
	gatewayID, err := h.resolveGateway(ctx, req.GatewayID)
	if err != nil {
		return models.Invoice{}, err
	}
	req.GatewayID = gatewayID
	if req.FederationID == "" {
		req.FederationID = h.federationID
	}
	if req.ExpiryTime == 0 {
		req.ExpiryTime = defaultInvoiceExpiry
	}

	var invoice models.Invoice
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&invoice).
		Post("/v2/ln/invoice")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invoice{}, err
	}

	return invoice, nil
}

// Pay implements [WalletAdapter] via POST /v2/ln/pay.
func (h *httpWalletAdapter) Pay(ctx context.Context, req models.PayRequest) (models.PayResult, error) {
	gatewayID, err := h.resolveGateway(ctx, req.GatewayID)
	if err != nil {
		return models.PayResult{}, err
	}
	req.GatewayID = gatewayID
	if req.FederationID == "" {
		req.FederationID = h.federationID
	}

	var result models.PayResult
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/v2/ln/pay")
	if err != nil {
		return models.PayResult{}, fmt.Errorf("pay request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PayResult{}, err
	}

	return result, nil
}

// ListGateways implements [WalletAdapter] via GET /v2/ln/list-gateways.
func (h *httpWalletAdapter) ListGateways(ctx context.Context) ([]models.Gateway, error) {
	req := h.request(ctx)
	if h.federationID != "" {
		req.SetQueryParam("federationId", h.federationID)
	}

	resp, err := req.Get("/v2/ln/list-gateways")
	if err != nil {
		return nil, fmt.Errorf("list gateways request: %w: %w", ErrDaemonUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var gateways []models.Gateway
	if err = json.Unmarshal(resp.Body(), &gateways); err != nil {
		return nil, fmt.Errorf("decode gateways response: %w", err)
	}

	return gateways, nil
}

// resolveGateway returns explicit when set, otherwise the configured or
// cached gateway, otherwise the first active gateway reported by the daemon.
func (h *httpWalletAdapter) resolveGateway(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	h.mu.Lock()
	cached := h.gatewayID
	h.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	gateways, err := h.ListGateways(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve gateway: %w", err)
	}

	picked := pickGateway(gateways)
	if picked == "" {
		return "", ErrNoGateway
	}

	h.mu.Lock()
	h.gatewayID = picked
	h.mu.Unlock()

	h.logger.Debug().Str("gateway_id", picked).Msg("lightning gateway selected")
	return picked, nil
}

func pickGateway(gateways []models.Gateway) string {
	for _, g := range gateways {
		if g.Active && g.GatewayID != "" {
			return g.GatewayID
		}
	}
	for _, g := range gateways {
		if g.GatewayID != "" {
			return g.GatewayID
		}
	}
	return ""
}

func (h *httpWalletAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.RequestWithContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.password != "" {
		req.SetHeader("Authorization", "Bearer "+h.password)
	}
	return req
}
