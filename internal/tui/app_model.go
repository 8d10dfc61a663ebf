package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputID indexes the text inputs of the wallet page in focus order.
type inputID int

const (
	inputInvite inputID = iota
	inputAmount
	inputDescription
	inputToken
	inputInvoice
	inputCount
)

const inputWidth = 60

// appModel is the single wallet page: five cards stacked top to bottom.
// Every wallet call runs inside a tea.Cmd and reports back with a message;
// all fields below are owned by the Update loop.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	feed     *balanceFeed
	logger   *logger.Logger

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error

	open    bool
	balance models.Amount

	inputs []textinput.Model
	focus  inputID

	status  card
	join    card
	invoice card
	redeem  card
	pay     card

	invoiceText string
	copied      bool
	copySeq     int
}

func newAppModel(ctx context.Context, services *service.ClientServices, inviteCode string, feed *balanceFeed, logger *logger.Logger) appModel {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = inputWidth
		inputs[i].CharLimit = 0
	}
	inputs[inputInvite].Placeholder = "Invite Code..."
	inputs[inputInvite].SetValue(inviteCode)
	inputs[inputAmount].Placeholder = "Enter amount"
	inputs[inputDescription].Placeholder = "Enter description"
	inputs[inputToken].Placeholder = "Long ecash string..."
	inputs[inputInvoice].Placeholder = "lnbc..."

	m := appModel{
		ctx:            ctx,
		services:       services,
		feed:           feed,
		logger:         logger,
		writeClipboard: clipboard.WriteAll,
		open:           services.WalletService.IsOpen(),
		inputs:         inputs,
	}
	if b, ok := services.BalanceService.Balance(); ok {
		m.balance = b
	}

	m.focus = inputInvite
	if m.open {
		m.focus = inputAmount
	}
	m.inputs[m.focus].Focus()

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.feed.wait())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case openCheckedMsg:
		if msg.err != nil {
			m.status.fail(msg.err)
		} else {
			m.status.succeed("")
		}
		m.setOpen(msg.open)
		return m, nil

	case joinDoneMsg:
		if msg.err != nil {
			m.join.fail(msg.err)
			return m, nil
		}
		m.join.succeed(app.MsgJoined)
		m.setOpen(true)
		return m, nil

	case invoiceDoneMsg:
		if msg.err != nil {
			m.invoice.fail(msg.err)
			return m, nil
		}
		m.invoice.succeed("")
		m.invoiceText = msg.invoice.Invoice
		return m, nil

	case redeemDoneMsg:
		if msg.err != nil {
			m.redeem.fail(msg.err)
			return m, nil
		}
		m.redeem.succeed(app.MsgRedeemed)
		return m, nil

	case payDoneMsg:
		if msg.err != nil {
			m.pay.fail(msg.err)
			return m, nil
		}
		m.pay.succeed(app.MsgPaid)
		return m, nil

	case balanceMsg:
		m.balance = msg.amount
		m.setOpen(m.services.WalletService.IsOpen())
		return m, m.feed.wait()

	case copiedMsg:
		if msg.seq != m.copySeq {
			return m, nil
		}
		m.copied = true
		return m, cmdClearStatus(msg.seq)

	case clearStatusMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.check):
		if m.status.inFlight() {
			return m, nil
		}
		m.status.begin()
		return m, cmdCheckOpen(m.ctx, m.services.WalletService)
	case key.Matches(msg, keys.copy):
		if m.invoiceText == "" {
			return m, nil
		}
		m.copySeq++
		return m, cmdCopyToClipboard(m.writeClipboard, m.invoiceText, m.copySeq, m.logger)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inputDisabled(m.focus) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit fires the action of the card that owns the focused input.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	switch m.focus {
	case inputInvite:
		return m.submitJoin()
	case inputAmount, inputDescription:
		return m.submitInvoice()
	case inputToken:
		return m.submitRedeem()
	case inputInvoice:
		return m.submitPay()
	}
	return m, nil
}

func (m appModel) submitJoin() (tea.Model, tea.Cmd) {
	if m.open || m.join.inFlight() {
		return m, nil
	}
	code := strings.TrimSpace(m.inputs[inputInvite].Value())
	if code == "" {
		m.join.fail(fmt.Sprintf(app.MsgFieldRequired, "invite code"))
		return m, nil
	}

	m.join.begin()
	return m, cmdJoin(m.ctx, m.services.WalletService, code)
}

func (m appModel) submitInvoice() (tea.Model, tea.Cmd) {
	if m.invoice.inFlight() {
		return m, nil
	}
	rawAmount := strings.TrimSpace(m.inputs[inputAmount].Value())
	description := strings.TrimSpace(m.inputs[inputDescription].Value())

	m.invoiceText = ""
	m.copied = false
	switch {
	case rawAmount == "":
		m.invoice.fail(fmt.Sprintf(app.MsgFieldRequired, "amount"))
		return m, nil
	case description == "":
		m.invoice.fail(fmt.Sprintf(app.MsgFieldRequired, "description"))
		return m, nil
	}
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		m.invoice.fail(app.MsgAmountNotInteger)
		return m, nil
	}

	m.invoice.begin()
	return m, cmdCreateInvoice(m.ctx, m.services.LightningService, amount, description)
}

func (m appModel) submitRedeem() (tea.Model, tea.Cmd) {
	if m.redeem.inFlight() {
		return m, nil
	}
	token := strings.TrimSpace(m.inputs[inputToken].Value())
	if token == "" {
		m.redeem.fail(fmt.Sprintf(app.MsgFieldRequired, "ecash token"))
		return m, nil
	}

	m.redeem.begin()
	return m, cmdRedeem(m.ctx, m.services.MintService, token)
}

func (m appModel) submitPay() (tea.Model, tea.Cmd) {
	if m.pay.inFlight() {
		return m, nil
	}
	invoice := strings.TrimSpace(m.inputs[inputInvoice].Value())
	if invoice == "" {
		m.pay.fail(fmt.Sprintf(app.MsgFieldRequired, "invoice"))
		return m, nil
	}

	m.pay.begin()
	return m, cmdPay(m.ctx, m.services.LightningService, invoice)
}

// inputDisabled reports whether id can take focus and input. Only the invite
// code is ever disabled, once the wallet is open.
func (m appModel) inputDisabled(id inputID) bool {
	return id == inputInvite && m.open
}

func (m *appModel) moveFocus(step int) {
	next := m.focus
	for i := inputID(0); i < inputCount; i++ {
		next = (next + inputID(step) + inputCount) % inputCount
		if !m.inputDisabled(next) {
			break
		}
	}
	m.setFocus(next)
}

func (m *appModel) setFocus(id inputID) {
	m.inputs[m.focus].Blur()
	m.focus = id
	m.inputs[m.focus].Focus()
}

// setOpen updates the open flag and moves focus off the invite code when it
// becomes disabled.
func (m *appModel) setOpen(open bool) {
	m.open = open
	if m.inputDisabled(m.focus) {
		m.moveFocus(1)
	}
}

func (m appModel) View() string {
	var b strings.Builder

	m.viewStatus(&b)
	b.WriteString("\n")
	m.viewJoin(&b)
	b.WriteString("\n")
	m.viewInvoice(&b)
	b.WriteString("\n")
	m.viewRedeem(&b)
	b.WriteString("\n")
	m.viewPay(&b)

	return appStyle.Render(renderPage(
		"FEDIMINT WALLET",
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ ctrl+r: check │ ctrl+y: copy invoice │ ctrl+a: activity │ ctrl+b: about",
	))
}

func (m appModel) viewStatus(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Wallet Status"))
	b.WriteString("\n")

	openText := "No"
	if m.open {
		openText = "Yes"
	}
	checkLabel := "Check"
	if m.status.inFlight() {
		checkLabel = "Checking..."
	}
	b.WriteString("Is Wallet Open? " + openText + "  " + button(checkLabel, m.status.inFlight()) + "\n")
	b.WriteString("Balance: " + m.balance.String() + "\n")
	renderCardRegions(b, m.status)
}

func (m appModel) viewJoin(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Join Federation"))
	b.WriteString("\n")

	if m.open {
		b.WriteString("  " + disabledStyle.Render(fitText(m.inputs[inputInvite].Value(), inputWidth)) + "\n")
	} else {
		b.WriteString(m.inputLine(inputInvite, ""))
	}

	label := "Join"
	if m.join.inFlight() {
		label = "Joining..."
	}
	b.WriteString(button(label, m.open || m.join.inFlight()) + "\n")

	if m.open && m.join.result == "" {
		b.WriteString(disabledStyle.Render(app.MsgAlreadyJoined) + "\n")
	}
	renderCardRegions(b, m.join)
}

func (m appModel) viewInvoice(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Generate Lightning Invoice"))
	b.WriteString("\n")
	b.WriteString(m.inputLine(inputAmount, "Amount (sats): "))
	b.WriteString(m.inputLine(inputDescription, "Description:   "))

	label := "Generate Invoice"
	if m.invoice.inFlight() {
		label = "Generating..."
	}
	b.WriteString(button(label, m.invoice.inFlight()) + "\n")
	b.WriteString(helpStyle.Render("mutinynet faucet: "+app.MsgFaucetURL) + "\n")

	if m.invoiceText != "" {
		copyLabel := "Copy"
		if m.copied {
			copyLabel = app.MsgCopied
		}
		b.WriteString("Generated Invoice: " + button(copyLabel, false) + "\n")
		b.WriteString(m.invoiceText + "\n")
	}
	renderCardRegions(b, m.invoice)
}

func (m appModel) viewRedeem(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Redeem Ecash"))
	b.WriteString("\n")
	b.WriteString(m.inputLine(inputToken, ""))

	label := "Redeem"
	if m.redeem.inFlight() {
		label = "Redeeming..."
	}
	b.WriteString(button(label, m.redeem.inFlight()) + "\n")
	renderCardRegions(b, m.redeem)
}

func (m appModel) viewPay(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Pay Lightning"))
	b.WriteString("\n")
	b.WriteString(m.inputLine(inputInvoice, ""))

	label := "Pay"
	if m.pay.inFlight() {
		label = "Paying..."
	}
	b.WriteString(button(label, m.pay.inFlight()) + "\n")
	renderCardRegions(b, m.pay)
}

func (m appModel) inputLine(id inputID, label string) string {
	cursor := "  "
	if m.focus == id {
		cursor = focusedStyle.Render("> ")
	}
	return cursor + label + m.inputs[id].View() + "\n"
}
