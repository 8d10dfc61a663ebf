package tui

import (
	"context"

	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
// 1) handles global Ctrl+C quit
// 2) toggles the activity and build info overlays
// 3) delegates all other messages to the wallet page
//
// Wallet results keep flowing to the page while an overlay is shown.
type RootModel struct {
	ctx      context.Context
	activity service.ClientActivityService
	page     appModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	activityView activityModel
	showActivity bool

	quitByUser bool
}

// NewRootModel wraps page with the global hotkeys and overlays.
func NewRootModel(ctx context.Context, page appModel, activity service.ClientActivityService, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		activity:  activity,
		page:      page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			r.showActivity = false
			return r, nil
		case key.Matches(msg, keys.activity):
			if r.showActivity {
				r.showActivity = false
				return r, nil
			}
			r.showActivity = true
			r.showBuildInfo = false
			r.activityView = activityModel{loading: true}
			return r, cmdLoadActivity(r.ctx, r.activity)
		case key.Matches(msg, keys.esc):
			if r.showBuildInfo || r.showActivity {
				r.showBuildInfo = false
				r.showActivity = false
				return r, nil
			}
		}

		if r.showBuildInfo || r.showActivity {
			return r, nil
		}

	case activityLoadedMsg:
		r.activityView = activityModel{items: msg.items}
		if msg.err != nil {
			r.activityView.err = describeFailure(msg.err)
		}
		return r, nil
	}

	updated, cmd := r.page.Update(msg)
	r.page = updated.(appModel)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.showActivity {
		return appStyle.Render(r.activityView.View())
	}
	return r.page.View()
}
