// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationKind names a wallet action submitted from the front-end.
type OperationKind string

const (
	// OperationJoin is a federation join submitted with an invite code.
	OperationJoin OperationKind = "join"

	// OperationRedeem is an e-cash token redemption.
	OperationRedeem OperationKind = "redeem"

	// OperationPay is an outgoing Lightning payment.
	OperationPay OperationKind = "pay"

	// OperationInvoice is a Lightning invoice generation.
	OperationInvoice OperationKind = "invoice"
)

// OperationStatus is the final outcome of an operation.
type OperationStatus string

const (
	OperationSucceeded OperationStatus = "success"
	OperationFailed    OperationStatus = "failure"
)

// Operation is one entry of the local activity journal. It records what was
// submitted and how it ended; it is never read back into view state.
type Operation struct {
	// ID is a UUIDv7 assigned when the entry is recorded.
	ID string `json:"id"`

	// Kind is the wallet action that was submitted.
	Kind OperationKind `json:"kind"`

	// Input is a shortened form of the submitted value (invite code,
	// token, invoice or amount) suitable for display.
	Input string `json:"input"`

	// Status tells whether the wallet call succeeded.
	Status OperationStatus `json:"status"`

	// Message holds the success text or the stringified error.
	Message string `json:"message"`

	// CreatedAt is when the outcome was recorded.
	CreatedAt time.Time `json:"created_at"`
}
