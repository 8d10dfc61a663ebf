// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
)

// daemonRejections are the adapter errors carrying the daemon's own message.
var daemonRejections = []error{
	adapter.ErrBadRequest,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrForbidden,
	adapter.ErrBadGateway,
	adapter.ErrInternalServerError,
}

// mapAdapterError translates the adapter's transport error into a service
// error. The daemon's own message is kept so the card shows what went wrong.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrDaemonUnreachable):
		return ErrWalletUnreachable
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWalletAuth
	case errors.Is(err, adapter.ErrNoGateway):
		return ErrNoGateway
	}

	for _, target := range daemonRejections {
		if !errors.Is(err, target) {
			continue
		}
		if msg := extractBody(err, target); msg != "" {
			return fmt.Errorf("%w: %s", ErrWalletRejected, msg)
		}
		return ErrWalletRejected
	}

	return err
}

// extractBody extracts the body from a message of the form
// "<sentinel>: <body>".
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return strings.TrimSpace(msg[idx+len(prefix):])
	}
	return ""
}
