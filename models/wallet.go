// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FederationInfo describes a single joined federation as reported by the
// wallet daemon's info endpoint.
type FederationInfo struct {
	// FederationID is the daemon-assigned federation identifier.
	FederationID string `json:"-"`

	// Network is the bitcoin network the federation operates on
	// (e.g. "signet" for mutinynet).
	Network string `json:"network"`

	// TotalAmountMsat is the spendable e-cash balance held in this
	// federation, in millisatoshis.
	TotalAmountMsat int64 `json:"totalAmountMsat"`

	// TotalNumNotes is the number of e-cash notes the wallet holds.
	TotalNumNotes int64 `json:"totalNumNotes"`

	// Meta carries free-form federation metadata (name, welcome message).
	Meta map[string]any `json:"meta,omitempty"`
}

// WalletInfo is the full info response: one entry per joined federation.
type WalletInfo map[string]FederationInfo

// TotalAmount sums the balances of every joined federation.
func (w WalletInfo) TotalAmount() Amount {
	var total int64
	for _, f := range w {
		total += f.TotalAmountMsat
	}
	return Amount(total)
}

// IsOpen reports whether at least one federation has been joined.
func (w WalletInfo) IsOpen() bool {
	return len(w) > 0
}

// JoinRequest is the body sent to the daemon's join endpoint.
type JoinRequest struct {
	InviteCode      string `json:"inviteCode"`
	UseManualSecret bool   `json:"useManualSecret"`
}

// JoinResult is returned after a successful federation join.
type JoinResult struct {
	// ThisFederationID is the id of the federation that was just joined.
	ThisFederationID string `json:"thisFederationId"`

	// FederationIDs lists every federation the wallet is now a member of.
	FederationIDs []string `json:"federationIds"`
}

// ReissueRequest is the body sent to redeem an e-cash token.
type ReissueRequest struct {
	Notes        string `json:"notes"`
	FederationID string `json:"federationId,omitempty"`
}

// RedeemResult is returned after an e-cash token has been reissued into the
// wallet.
type RedeemResult struct {
	AmountMsat int64 `json:"amountMsat"`
}

// Amount returns the redeemed value.
func (r RedeemResult) Amount() Amount {
	return Amount(r.AmountMsat)
}

// InvoiceRequest is the body sent to create a Lightning invoice.
type InvoiceRequest struct {
	AmountMsat   int64  `json:"amountMsat"`
	Description  string `json:"description"`
	ExpiryTime   int64  `json:"expiryTime,omitempty"`
	GatewayID    string `json:"gatewayId,omitempty"`
	FederationID string `json:"federationId,omitempty"`
}

// Invoice is a freshly generated Lightning payment request.
type Invoice struct {
	// OperationID identifies the receive operation inside the daemon.
	OperationID string `json:"operationId"`

	// Invoice is the BOLT11 payment request string, shown verbatim.
	Invoice string `json:"invoice"`
}

// PayRequest is the body sent to pay a Lightning invoice.
type PayRequest struct {
	PaymentInfo  string `json:"paymentInfo"`
	GatewayID    string `json:"gatewayId,omitempty"`
	FederationID string `json:"federationId,omitempty"`
}

// PayResult is returned after a Lightning payment has been sent.
type PayResult struct {
	OperationID string `json:"operationId"`
	PaymentType string `json:"paymentType"`
	ContractID  string `json:"contractId"`
	Fee         int64  `json:"fee"`
}

// Gateway is a Lightning gateway registered with a federation.
type Gateway struct {
	FederationID string `json:"federationId"`
	GatewayID    string `json:"gatewayId"`
	NodePubKey   string `json:"nodePubKey"`
	Active       bool   `json:"active"`
}
