package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedBadgeTTL is how long the "Copied!" badge stays visible.
const copiedBadgeTTL = 2 * time.Second

// guarded runs call and converts a panic of any value into the message built
// by onPanic, so the card that issued the call always leaves the in-flight
// state.
func guarded(call func() tea.Msg, onPanic func(err error) tea.Msg) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = onPanic(recoveredPanic{value: r})
			}
		}()
		return call()
	}
}

func cmdCheckOpen(ctx context.Context, svc service.ClientWalletService) tea.Cmd {
	return guarded(func() tea.Msg {
		open, err := svc.RefreshOpen(ctx)
		return openCheckedMsg{open: open, err: err}
	}, func(err error) tea.Msg {
		return openCheckedMsg{open: svc.IsOpen(), err: err}
	})
}

func cmdJoin(ctx context.Context, svc service.ClientWalletService, inviteCode string) tea.Cmd {
	return guarded(func() tea.Msg {
		res, err := svc.JoinFederation(ctx, inviteCode)
		return joinDoneMsg{result: res, err: err}
	}, func(err error) tea.Msg {
		return joinDoneMsg{err: err}
	})
}

func cmdRedeem(ctx context.Context, svc service.ClientMintService, token string) tea.Cmd {
	return guarded(func() tea.Msg {
		res, err := svc.RedeemEcash(ctx, token)
		return redeemDoneMsg{result: res, err: err}
	}, func(err error) tea.Msg {
		return redeemDoneMsg{err: err}
	})
}

func cmdPay(ctx context.Context, svc service.ClientLightningService, invoice string) tea.Cmd {
	return guarded(func() tea.Msg {
		res, err := svc.PayInvoice(ctx, invoice)
		return payDoneMsg{result: res, err: err}
	}, func(err error) tea.Msg {
		return payDoneMsg{err: err}
	})
}

func cmdCreateInvoice(ctx context.Context, svc service.ClientLightningService, amountSats int64, description string) tea.Cmd {
	return guarded(func() tea.Msg {
		inv, err := svc.CreateInvoice(ctx, amountSats, description)
		return invoiceDoneMsg{invoice: inv, err: err}
	}, func(err error) tea.Msg {
		return invoiceDoneMsg{err: err}
	})
}

func cmdLoadActivity(ctx context.Context, svc service.ClientActivityService) tea.Cmd {
	return guarded(func() tea.Msg {
		items, err := svc.Recent(ctx, activityLimit)
		return activityLoadedMsg{items: items, err: err}
	}, func(err error) tea.Msg {
		return activityLoadedMsg{err: err}
	})
}

// cmdCopyToClipboard writes text with write. A failed copy is only logged;
// the card never shows it.
func cmdCopyToClipboard(write func(string) error, text string, seq int, log *logger.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			log.Err(err).Str("func", "tui.cmdCopyToClipboard").Msg("failed to copy invoice to clipboard")
			return nil
		}
		return copiedMsg{seq: seq}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(copiedBadgeTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
