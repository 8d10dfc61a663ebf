// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// recoveredPanic carries the value of a panic raised inside a wallet call so
// that it travels through the same error path as a returned error.
type recoveredPanic struct {
	value any
}

func (p recoveredPanic) Error() string {
	return describeFailure(p.value)
}

// describeFailure turns any failure value into a non-empty line for a card's
// error region.
func describeFailure(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
	case error:
		s = humanizeWalletError(x)
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprintf("%+v", x)
	}

	if strings.TrimSpace(s) == "" {
		return app.MsgUnknownError
	}
	return s
}

func humanizeWalletError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrWalletUnreachable) {
		return app.MsgDaemonUnreachable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgDaemonUnreachable
	}

	return err.Error()
}
