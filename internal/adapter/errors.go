package adapter

import "errors"

// Sentinel errors returned by [WalletAdapter] implementations. HTTP status
// codes reported by the daemon are mapped onto them by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("wallet daemon rejected the password")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("wallet daemon error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrDaemonUnreachable wraps transport failures (refused connection,
	// timeout, DNS) where no HTTP response was received at all.
	ErrDaemonUnreachable = errors.New("wallet daemon is unreachable")

	// ErrNoGateway is returned when no gateway id is configured and the
	// federation does not advertise any Lightning gateway.
	ErrNoGateway = errors.New("no lightning gateway available")
)
