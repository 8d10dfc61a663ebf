package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("decode info response: unexpected EOF")

	tests := []struct {
		name    string
		in      error
		wantIs  error
		wantMsg string
	}{
		{name: "nil", in: nil},
		{
			name:    "unreachable",
			in:      fmt.Errorf("info request: %w: %w", adapter.ErrDaemonUnreachable, errors.New("connection refused")),
			wantIs:  ErrWalletUnreachable,
			wantMsg: "wallet daemon is unreachable",
		},
		{
			name:    "unauthorized",
			in:      fmt.Errorf("%w: nope", adapter.ErrUnauthorized),
			wantIs:  ErrWalletAuth,
			wantMsg: "wallet daemon rejected the password",
		},
		{
			name:    "no gateway",
			in:      adapter.ErrNoGateway,
			wantIs:  ErrNoGateway,
			wantMsg: "no lightning gateway available",
		},
		{
			name:    "daemon message kept",
			in:      fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Invalid invite code: bad checksum"),
			wantIs:  ErrWalletRejected,
			wantMsg: "wallet rejected the request: Invalid invite code: bad checksum",
		},
		{
			name:    "wrapped rejection",
			in:      fmt.Errorf("resolve gateway: %w", fmt.Errorf("%w: %s", adapter.ErrBadRequest, "unknown federation")),
			wantIs:  ErrWalletRejected,
			wantMsg: "wallet rejected the request: unknown federation",
		},
		{
			name:    "empty body",
			in:      fmt.Errorf("%w: ", adapter.ErrBadGateway),
			wantIs:  ErrWalletRejected,
			wantMsg: "wallet rejected the request",
		},
		{name: "unmapped passes through", in: other, wantIs: other, wantMsg: other.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.in == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
			assert.Equal(t, tt.wantMsg, got.Error())
		})
	}
}
