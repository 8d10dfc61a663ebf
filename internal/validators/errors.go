package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyInviteCode   = errors.New("invite code is required")
	ErrEmptyNotes        = errors.New("ecash token is required")
	ErrEmptyPaymentInfo  = errors.New("invoice is required")
	ErrNonPositiveAmount = errors.New("amount must be a positive number of sats")
	ErrAmountTooLarge    = errors.New("amount is too large")
	ErrNegativeExpiry    = errors.New("invoice expiry cannot be negative")
)
