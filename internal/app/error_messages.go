// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// wallet client cards, services and the debug API.
//
// All Msg* constants are human-readable strings shown in card result/error
// regions, written into journal entries or returned by the debug API.
// Keeping them in one place ensures consistent wording throughout.
package app

const (
	// MsgJoined is shown after the wallet joined a federation.
	MsgJoined = "Joined!"

	// MsgRedeemed is shown after an e-cash token was redeemed.
	MsgRedeemed = "Redeemed!"

	// MsgPaid is shown after a Lightning invoice was paid.
	MsgPaid = "Paid!"

	// MsgInvoiceCreated is journaled after an invoice was generated; the
	// card itself shows the invoice string.
	MsgInvoiceCreated = "Invoice generated"

	// MsgCopied is the transient badge shown after the invoice was copied.
	MsgCopied = "Copied!"

	// MsgAlreadyJoined is the notice on the join card once the wallet is
	// open and no join result is displayed.
	MsgAlreadyJoined = "You've already joined a federation"

	// MsgDaemonUnreachable replaces transport errors where the daemon did
	// not answer at all.
	MsgDaemonUnreachable = "wallet daemon is unreachable"

	// MsgUnknownError is used when a failure carries no printable text.
	MsgUnknownError = "unknown error"

	// MsgFieldRequired is formatted with the field label when a required
	// input is empty on submit.
	MsgFieldRequired = "%s is required"

	// MsgAmountNotInteger is shown when the invoice amount does not parse
	// as a whole number of sats.
	MsgAmountNotInteger = "amount must be a whole number of sats"

	// MsgFaucetURL is the testnet faucet advertised on the invoice card.
	MsgFaucetURL = "https://faucet.mutinynet.com/"
)
