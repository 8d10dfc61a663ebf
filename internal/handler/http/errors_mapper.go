package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidLimit: http.StatusBadRequest,

	service.ErrInvalidAmount:     http.StatusBadRequest,
	service.ErrAmountTooLarge:    http.StatusBadRequest,
	service.ErrEmptyInviteCode:   http.StatusBadRequest,
	service.ErrEmptyToken:        http.StatusBadRequest,
	service.ErrEmptyInvoice:      http.StatusBadRequest,
	service.ErrWalletRejected:    http.StatusUnprocessableEntity,
	service.ErrWalletAuth:        http.StatusBadGateway,
	service.ErrWalletUnreachable: http.StatusBadGateway,
	service.ErrNoGateway:         http.StatusServiceUnavailable,

	store.ErrInvalidLimit:     http.StatusBadRequest,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
