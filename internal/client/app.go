package client

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  Runner
	closer   io.Closer

	logger *logger.Logger
}

// NewApp assembles the client runtime. closer releases local storage after
// the UI exits and may be nil.
func NewApp(services *service.ClientServices, ui UI, workers Runner, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		closer:   closer,
		logger:   logger,
	}
}

// Run reads the initial wallet state, starts the background workers and
// shows the UI. Workers are stopped and storage is closed when the UI
// returns. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if open, err := a.services.WalletService.RefreshOpen(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial wallet check failed")
	} else {
		a.logger.Info().Bool("open", open).Msg("initial wallet check")
	}

	a.workers.Run(ctx)
	defer a.shutdown()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	return err
}

func (a *App) shutdown() {
	a.workers.Stop()

	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close local storage")
	}
}
