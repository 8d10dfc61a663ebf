package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewDebugServer creates the debug HTTP server bound to cfg.HTTPAddress.
// Returns [ErrDebugDisabled] when no address is configured.
func NewDebugServer(handler http.Handler, cfg config.ClientDebug, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, ErrDebugDisabled
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating debug server...")
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}

func (h *httpServer) Addr() string {
	return h.server.Addr
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("address", h.server.Addr).Msg("launching debug HTTP server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "httpServer.RunServer").Msg("debug HTTP server stopped")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.Shutdown").Msg("debug HTTP server shutdown")
		return
	}
	h.logger.Info().Msg("debug server shutdown gracefully")
}
