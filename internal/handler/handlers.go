package handler

import (
	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/handler/http"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the debug API handler when cfg enables it. It returns
// errNoHandlersAreCreated when no debug address is configured; the client
// treats that as "debug API disabled".
func NewHandlers(services *service.ClientServices, cfg config.ClientDebug, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating debug handlers...")
	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
