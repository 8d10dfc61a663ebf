package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/client"
	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/handler"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/server"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/internal/store"
	"github.com/MKhiriev/go-fedi-wallet/internal/tui"
	"github.com/MKhiriev/go-fedi-wallet/internal/workers"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.New("fedi-wallet-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fedi-wallet-client", cfg.Log.File)
	defer log.Close()

	walletAdapter, err := adapter.NewHTTPWalletAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, walletAdapter, buildInfo, log)

	debugServer, err := newDebugServer(services, cfg.Debug, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create debug server")
	}

	ui := tui.New(services, cfg.App, log)
	app := client.NewApp(services, ui, workers.NewClientWorkers(services, cfg.Workers, debugServer), localStorage, log)

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newDebugServer returns a nil server when the debug API is disabled.
func newDebugServer(services *service.ClientServices, cfg config.ClientDebug, log *logger.Logger) (server.Server, error) {
	handlers, err := handler.NewHandlers(services, cfg, log)
	if handler.IsDisabled(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	srv, err := server.NewDebugServer(handlers.HTTP.Init(), cfg, log)
	if server.IsDisabled(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	log.Warn().Str("address", srv.Addr()).Msg("debug API enabled, wallet operations are reachable over HTTP")
	return srv, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
