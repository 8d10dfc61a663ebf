package service

import (
	"errors"

	"github.com/MKhiriev/go-fedi-wallet/internal/validators"
)

var (
	// ErrInvalidAmount is returned when an invoice amount is not a positive
	// number of sats.
	ErrInvalidAmount = validators.ErrNonPositiveAmount

	// ErrAmountTooLarge is returned when an invoice amount in sats cannot be
	// expressed in millisatoshis.
	ErrAmountTooLarge = validators.ErrAmountTooLarge

	ErrEmptyInviteCode = validators.ErrEmptyInviteCode
	ErrEmptyToken      = validators.ErrEmptyNotes
	ErrEmptyInvoice    = validators.ErrEmptyPaymentInfo

	// ErrWalletUnreachable is returned when the wallet daemon did not answer.
	ErrWalletUnreachable = errors.New("wallet daemon is unreachable")

	// ErrWalletAuth is returned when the daemon rejected the configured
	// password.
	ErrWalletAuth = errors.New("wallet daemon rejected the password")

	// ErrWalletRejected is returned when the daemon answered with an error
	// for the submitted input (malformed code, spent notes, routing
	// failure, insufficient balance).
	ErrWalletRejected = errors.New("wallet rejected the request")

	// ErrNoGateway is returned when no Lightning gateway can be used.
	ErrNoGateway = errors.New("no lightning gateway available")
)
