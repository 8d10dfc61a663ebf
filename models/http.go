package models

// WalletStatus is the debug API view of the wallet: the cached open flag and
// the last published balance.
type WalletStatus struct {
	Open        bool  `json:"open"`
	BalanceSats int64 `json:"balanceSats"`
	BalanceMsat int64 `json:"balanceMsat"`
	// BalanceKnown is false until the first balance has been published.
	BalanceKnown bool `json:"balanceKnown"`
}

// JoinFederationRequest is the body of the debug join endpoint.
type JoinFederationRequest struct {
	InviteCode string `json:"inviteCode"`
}

// RedeemEcashRequest is the body of the debug redeem endpoint.
type RedeemEcashRequest struct {
	Notes string `json:"notes"`
}

// PayInvoiceRequest is the body of the debug pay endpoint.
type PayInvoiceRequest struct {
	Invoice string `json:"invoice"`
}

// CreateInvoiceRequest is the body of the debug invoice endpoint.
type CreateInvoiceRequest struct {
	AmountSats  int64  `json:"amountSats"`
	Description string `json:"description"`
}

// ErrorResponse is written by the debug API for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BuildInfoResponse is the JSON form of [AppBuildInfo].
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
