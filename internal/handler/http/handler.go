package http

import (
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/rs/zerolog"
)

// Handler serves the debug API on top of the same services the TUI uses.
type Handler struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// NewHandler returns a Handler whose log entries carry component=debug_api.
func NewHandler(services *service.ClientServices, log *logger.Logger) *Handler {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "debug_api")
	})

	return &Handler{services: services, logger: l}
}
