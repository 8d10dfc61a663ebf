package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/mock"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInviteCode = "fed11testinvite"

type fixture struct {
	wallet    *mock.MockClientWalletService
	balance   *mock.MockClientBalanceService
	mint      *mock.MockClientMintService
	lightning *mock.MockClientLightningService
	activity  *mock.MockClientActivityService
	appInfo   *mock.MockAppInfoService
	services  *service.ClientServices
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		wallet:    mock.NewMockClientWalletService(ctrl),
		balance:   mock.NewMockClientBalanceService(ctrl),
		mint:      mock.NewMockClientMintService(ctrl),
		lightning: mock.NewMockClientLightningService(ctrl),
		activity:  mock.NewMockClientActivityService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	f.services = &service.ClientServices{
		WalletService:    f.wallet,
		BalanceService:   f.balance,
		MintService:      f.mint,
		LightningService: f.lightning,
		ActivityService:  f.activity,
		AppInfoService:   f.appInfo,
	}
	return f
}

func (f *fixture) model(open bool) appModel {
	f.wallet.EXPECT().IsOpen().Return(open)
	f.balance.EXPECT().Balance().Return(models.Amount(0), false)
	return newAppModel(context.Background(), f.services, testInviteCode, newBalanceFeed(), logger.Nop())
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	page, ok := next.(appModel)
	require.True(t, ok)
	return page, cmd
}

func press(t *testing.T, m appModel, k tea.KeyType) (appModel, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

// focusOn moves focus straight to id, as tab presses would.
func focusOn(m appModel, id inputID) appModel {
	m.setFocus(id)
	return m
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewAppModel_PrefillsInviteCodeAndFocus(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)

	assert.Equal(t, testInviteCode, m.inputs[inputInvite].Value())
	assert.Equal(t, inputInvite, m.focus)
	assert.Contains(t, m.View(), "Is Wallet Open? No")
	assert.Contains(t, m.View(), "Balance: 0 sats")
	assert.Contains(t, m.View(), "[Join]")
	assert.Contains(t, m.View(), app.MsgFaucetURL)
}

func TestNewAppModel_OpenWalletSkipsInviteInput(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)

	assert.Equal(t, inputAmount, m.focus)
	assert.Contains(t, m.View(), app.MsgAlreadyJoined)

	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, inputInvoice, m.focus, "focus wraps past the disabled invite input")
}

// ── join ─────────────────────────────────────────────────────────────────────

func TestJoin_SuccessDisablesInputAndOpensWallet(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)
	m.join.err = "stale error"

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.join.inFlight())
	assert.Empty(t, m.join.err)
	assert.Contains(t, m.View(), "Joining...")

	f.wallet.EXPECT().JoinFederation(gomock.Any(), testInviteCode).
		Return(models.JoinResult{ThisFederationID: "fed-1"}, nil)

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateSuccess, m.join.state)
	assert.Equal(t, app.MsgJoined, m.join.result)
	assert.True(t, m.open)
	assert.True(t, m.inputDisabled(inputInvite))
	assert.NotEqual(t, inputInvite, m.focus)

	view := m.View()
	assert.Contains(t, view, "Is Wallet Open? Yes")
	assert.Contains(t, view, "✓ "+app.MsgJoined)
	assert.NotContains(t, view, app.MsgAlreadyJoined)
}

func TestJoin_FailureShowsErrorAndKeepsWalletClosed(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)
	m.join.result = app.MsgJoined

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	f.wallet.EXPECT().JoinFederation(gomock.Any(), testInviteCode).
		Return(models.JoinResult{}, fmt.Errorf("%w: invalid invite code", service.ErrWalletRejected))

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateFailed, m.join.state)
	assert.Empty(t, m.join.result)
	assert.Equal(t, "wallet rejected the request: invalid invite code", m.join.err)
	assert.False(t, m.open)
}

func TestJoin_IgnoredWhenOpen(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)
	m.setOpen(true)
	m = focusOn(m, inputInvite)

	_, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
}

func TestJoin_EmptyInviteCodeShowsRequiredHint(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)
	m.inputs[inputInvite].SetValue("   ")

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "invite code is required", m.join.err)
	assert.False(t, m.join.inFlight())
}

// ── in-flight guard ──────────────────────────────────────────────────────────

func TestSubmit_InFlightGuardAppliesToEveryAction(t *testing.T) {
	tests := []struct {
		name  string
		focus inputID
		card  func(m appModel) card
	}{
		{name: "join", focus: inputInvite, card: func(m appModel) card { return m.join }},
		{name: "invoice", focus: inputDescription, card: func(m appModel) card { return m.invoice }},
		{name: "redeem", focus: inputToken, card: func(m appModel) card { return m.redeem }},
		{name: "pay", focus: inputInvoice, card: func(m appModel) card { return m.pay }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.model(false)
			m.inputs[inputAmount].SetValue("1000")
			m.inputs[inputDescription].SetValue("coffee")
			m.inputs[inputToken].SetValue("ecash-token")
			m.inputs[inputInvoice].SetValue("lnbc1invoice")
			m = focusOn(m, tt.focus)

			m, first := press(t, m, tea.KeyEnter)
			require.NotNil(t, first)
			assert.True(t, tt.card(m).inFlight())

			m, second := press(t, m, tea.KeyEnter)
			assert.Nil(t, second)
			assert.True(t, tt.card(m).inFlight())
		})
	}
}

// ── invoice ──────────────────────────────────────────────────────────────────

func TestInvoice_ShownVerbatimAndCopied(t *testing.T) {
	const bolt11 = "lnbc10u1pcoffeeinvoice"

	f := newFixture(t)
	m := f.model(true)
	m.inputs[inputAmount].SetValue("1000")
	m.inputs[inputDescription].SetValue("coffee")

	var copied []string
	m.writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Generating...")

	f.lightning.EXPECT().CreateInvoice(gomock.Any(), int64(1000), "coffee").
		Return(models.Invoice{OperationID: "op-1", Invoice: bolt11}, nil)

	m, _ = update(t, m, cmd())
	assert.Equal(t, bolt11, m.invoiceText)
	assert.Contains(t, m.View(), bolt11)
	assert.Contains(t, m.View(), "[Copy]")

	m, cmd = press(t, m, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, []string{bolt11}, copied)
	assert.Equal(t, copiedMsg{seq: 1}, msg)

	m, cmd = update(t, m, msg)
	assert.NotNil(t, cmd, "badge schedules its own reset")
	assert.Contains(t, m.View(), app.MsgCopied)

	m, _ = update(t, m, clearStatusMsg{seq: 1})
	assert.False(t, m.copied)
	assert.NotContains(t, m.View(), app.MsgCopied)
}

func TestInvoice_StaleClearDoesNotHideNewerBadge(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.invoiceText = "lnbc1"
	m.copySeq = 2

	m, _ = update(t, m, copiedMsg{seq: 2})
	m, _ = update(t, m, clearStatusMsg{seq: 1})
	assert.True(t, m.copied)
}

func TestInvoice_ClipboardFailureIsNotShown(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.invoiceText = "lnbc1"
	m.writeClipboard = func(string) error { return errors.New("no clipboard") }

	m, cmd := press(t, m, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Empty(t, m.invoice.err)
	assert.False(t, m.copied)
}

func TestInvoice_CopyWithoutInvoiceDoesNothing(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)

	_, cmd := press(t, m, tea.KeyCtrlY)
	assert.Nil(t, cmd)
}

func TestInvoice_InputValidation(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		description string
		wantErr     string
	}{
		{name: "missing amount", amount: "", description: "coffee", wantErr: "amount is required"},
		{name: "missing description", amount: "10", description: " ", wantErr: "description is required"},
		{name: "not a number", amount: "ten", description: "coffee", wantErr: app.MsgAmountNotInteger},
		{name: "fractional", amount: "1.5", description: "coffee", wantErr: app.MsgAmountNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.model(true)
			m.invoiceText = "lnbc-previous"
			m.inputs[inputAmount].SetValue(tt.amount)
			m.inputs[inputDescription].SetValue(tt.description)

			m, cmd := press(t, m, tea.KeyEnter)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.invoice.err)
			assert.Empty(t, m.invoiceText)
		})
	}
}

func TestInvoice_NonPositiveAmountReachesService(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.inputs[inputAmount].SetValue("0")
	m.inputs[inputDescription].SetValue("zero")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	f.lightning.EXPECT().CreateInvoice(gomock.Any(), int64(0), "zero").
		Return(models.Invoice{}, service.ErrInvalidAmount)

	m, _ = update(t, m, cmd())
	assert.Equal(t, service.ErrInvalidAmount.Error(), m.invoice.err)
	assert.Empty(t, m.invoiceText)
}

func TestInvoice_OversizedAmountShowsError(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	walletAdapter := mock.NewMockWalletAdapter(ctrl)
	f.services.LightningService = service.NewClientLightningService(walletAdapter, f.wallet, f.activity, logger.Nop())

	m := f.model(true)
	m.invoiceText = "lnbc-previous"
	m.inputs[inputAmount].SetValue("18446744073709552")
	m.inputs[inputDescription].SetValue("coffee")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	// the daemon must never see a wrapped amount
	walletAdapter.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Times(0)
	f.activity.EXPECT().Record(gomock.Any(), models.OperationInvoice, "18446744073709552", "", service.ErrAmountTooLarge)

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateFailed, m.invoice.state)
	assert.Equal(t, service.ErrAmountTooLarge.Error(), m.invoice.err)
	assert.Empty(t, m.invoice.result)
	assert.Empty(t, m.invoiceText)
	assert.Contains(t, m.View(), "⚠ "+service.ErrAmountTooLarge.Error())
}

// ── redeem / pay ─────────────────────────────────────────────────────────────

func TestRedeem_Success(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.inputs[inputToken].SetValue("  ecash-token ")
	m = focusOn(m, inputToken)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	f.mint.EXPECT().RedeemEcash(gomock.Any(), "ecash-token").
		Return(models.RedeemResult{AmountMsat: 21000}, nil)

	m, _ = update(t, m, cmd())
	assert.Equal(t, app.MsgRedeemed, m.redeem.result)
	assert.Empty(t, m.redeem.err)
}

func TestPay_UnreachableDaemonIsHumanized(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.inputs[inputInvoice].SetValue("lnbc1invoice")
	m.pay.result = app.MsgPaid
	m = focusOn(m, inputInvoice)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Empty(t, m.pay.result)

	f.lightning.EXPECT().PayInvoice(gomock.Any(), "lnbc1invoice").
		Return(models.PayResult{}, fmt.Errorf("%w: dial tcp 127.0.0.1:3333", service.ErrWalletUnreachable))

	m, _ = update(t, m, cmd())
	assert.Equal(t, app.MsgDaemonUnreachable, m.pay.err)
	assert.Empty(t, m.pay.result)
	assert.False(t, m.pay.inFlight())
}

func TestPay_Success(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)
	m.inputs[inputInvoice].SetValue("lnbc1invoice")
	m = focusOn(m, inputInvoice)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	f.lightning.EXPECT().PayInvoice(gomock.Any(), "lnbc1invoice").
		Return(models.PayResult{OperationID: "op-2"}, nil)

	m, _ = update(t, m, cmd())
	assert.Equal(t, app.MsgPaid, m.pay.result)
	assert.Contains(t, m.View(), "✓ "+app.MsgPaid)
}

// ── panics ───────────────────────────────────────────────────────────────────

type panicPayload struct {
	Code int
}

func TestRedeem_PanicOfAnyShapeBecomesError(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr string
	}{
		{name: "error", value: errors.New("notes already spent"), wantErr: "notes already spent"},
		{name: "string", value: "malformed token", wantErr: "malformed token"},
		{name: "struct", value: panicPayload{Code: 7}, wantErr: "{Code:7}"},
		{name: "empty string", value: "", wantErr: app.MsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.model(true)
			m.inputs[inputToken].SetValue("ecash-token")
			m.redeem.result = app.MsgRedeemed
			m = focusOn(m, inputToken)

			m, cmd := press(t, m, tea.KeyEnter)
			require.NotNil(t, cmd)

			f.mint.EXPECT().RedeemEcash(gomock.Any(), "ecash-token").
				DoAndReturn(func(context.Context, string) (models.RedeemResult, error) {
					panic(tt.value)
				})

			var msg tea.Msg
			require.NotPanics(t, func() { msg = cmd() })

			m, _ = update(t, m, msg)
			assert.False(t, m.redeem.inFlight())
			assert.Equal(t, tt.wantErr, m.redeem.err)
			assert.Empty(t, m.redeem.result)
		})
	}
}

// ── status / balance ─────────────────────────────────────────────────────────

func TestCheck_RefreshesOpenFlag(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)

	m, cmd := press(t, m, tea.KeyCtrlR)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Checking...")

	_, again := press(t, m, tea.KeyCtrlR)
	assert.Nil(t, again)

	f.wallet.EXPECT().RefreshOpen(gomock.Any()).Return(true, nil)

	m, _ = update(t, m, cmd())
	assert.True(t, m.open)
	assert.Empty(t, m.status.err)
	assert.Contains(t, m.View(), "Is Wallet Open? Yes")
}

func TestCheck_ErrorShownOnStatusCard(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)

	m, cmd := press(t, m, tea.KeyCtrlR)
	require.NotNil(t, cmd)

	f.wallet.EXPECT().RefreshOpen(gomock.Any()).Return(false, service.ErrWalletAuth)

	m, _ = update(t, m, cmd())
	assert.False(t, m.open)
	assert.Equal(t, service.ErrWalletAuth.Error(), m.status.err)
}

func TestBalance_UpdateShowsSatsAndRechecksOpen(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)

	f.wallet.EXPECT().IsOpen().Return(true)

	m, cmd := update(t, m, balanceMsg{amount: models.AmountFromSats(1234)})
	assert.NotNil(t, cmd, "balance feed is re-armed")
	assert.Equal(t, int64(1234), m.balance.Sats())
	assert.True(t, m.open)
	assert.Contains(t, m.View(), "Balance: 1234 sats")
}

func TestBalance_FocusLeavesInviteWhenOpened(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)
	require.Equal(t, inputInvite, m.focus)

	f.wallet.EXPECT().IsOpen().Return(true)

	m, _ = update(t, m, balanceMsg{amount: 0})
	assert.Equal(t, inputAmount, m.focus)
}

// ── focus ────────────────────────────────────────────────────────────────────

func TestFocus_TabCyclesInputs(t *testing.T) {
	f := newFixture(t)
	m := f.model(false)

	var order []inputID
	for i := inputID(0); i < inputCount; i++ {
		m, _ = press(t, m, tea.KeyTab)
		order = append(order, m.focus)
	}
	assert.Equal(t, []inputID{inputAmount, inputDescription, inputToken, inputInvoice, inputInvite}, order)
	assert.True(t, m.inputs[inputInvite].Focused())
	assert.False(t, m.inputs[inputInvoice].Focused())
}

func TestTyping_GoesToFocusedInput(t *testing.T) {
	f := newFixture(t)
	m := f.model(true)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
	assert.Equal(t, "42", m.inputs[inputAmount].Value())
	assert.Empty(t, m.inputs[inputDescription].Value())
}
