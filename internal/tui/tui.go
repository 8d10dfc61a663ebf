package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// programRunner runs a bubbletea program over model until it exits.
type programRunner func(ctx context.Context, model tea.Model) (tea.Model, error)

type TUI struct {
	services *service.ClientServices
	appCfg   config.ClientApp
	logger   *logger.Logger

	runProgram programRunner
}

func New(services *service.ClientServices, appCfg config.ClientApp, logger *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		appCfg:     appCfg,
		logger:     logger,
		runProgram: runFullscreen,
	}
}

func runFullscreen(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
}

// Run shows the wallet page until the user quits or ctx is cancelled. The
// balance subscription lives exactly as long as the program, and is released
// even when the program fails or panics.
func (t *TUI) Run(ctx context.Context) error {
	feed := newBalanceFeed()
	unsubscribe := t.services.BalanceService.SubscribeBalance(feed.push)
	defer func() {
		unsubscribe()
		feed.close()
	}()

	page := newAppModel(ctx, t.services, t.appCfg.InviteCode, feed, t.logger)
	root := NewRootModel(ctx, page, t.services.ActivityService, t.services.AppInfoService.BuildInfo())

	finalModel, err := t.runProgram(ctx, root)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
