// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the wallet client and
// the external wallet daemon.
//
// The primary abstraction is [WalletAdapter], which decouples the service
// layer from the daemon protocol. The package ships an HTTP/REST
// implementation ([NewHTTPWalletAdapter]) speaking the fedimint-clientd v2
// API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrDaemonUnreachable] when no
// response arrived).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_adapter_mock.go -package=mock

// WalletAdapter defines communication with the wallet daemon. The daemon owns
// every piece of protocol logic; implementations only serialise requests,
// attach the bearer password and map transport failures to the sentinel
// values of this package.
type WalletAdapter interface {
	// Info returns one entry per joined federation. An empty result means
	// the wallet has not joined any federation yet.
	Info(ctx context.Context) (models.WalletInfo, error)

	// Join asks the daemon to join the federation described by the invite
	// code.
	Join(ctx context.Context, req models.JoinRequest) (models.JoinResult, error)

	// Reissue redeems an out-of-band e-cash token into the wallet.
	Reissue(ctx context.Context, req models.ReissueRequest) (models.RedeemResult, error)

	// CreateInvoice requests a Lightning invoice through a gateway. When
	// req.GatewayID is empty the adapter resolves one via ListGateways.
	CreateInvoice(ctx context.Context, req models.InvoiceRequest) (models.Invoice, error)

	// Pay pays a Lightning invoice through a gateway. When req.GatewayID is
	// empty the adapter resolves one via ListGateways.
	Pay(ctx context.Context, req models.PayRequest) (models.PayResult, error)

	// ListGateways returns the Lightning gateways known to the federation.
	ListGateways(ctx context.Context) ([]models.Gateway, error)
}
