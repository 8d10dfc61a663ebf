package server

import "errors"

// IsDisabled reports whether err means no server was configured.
func IsDisabled(err error) bool {
	return errors.Is(err, ErrDebugDisabled)
}
