package tui

import (
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type openCheckedMsg struct {
	open bool
	err  error
}

type joinDoneMsg struct {
	result models.JoinResult
	err    error
}

type redeemDoneMsg struct {
	result models.RedeemResult
	err    error
}

type payDoneMsg struct {
	result models.PayResult
	err    error
}

type invoiceDoneMsg struct {
	invoice models.Invoice
	err     error
}

type balanceMsg struct {
	amount models.Amount
}

type activityLoadedMsg struct {
	items []models.Operation
	err   error
}

// copiedMsg and clearStatusMsg carry a sequence number so that an older
// timer never hides the badge of a newer copy.
type copiedMsg struct {
	seq int
}

type clearStatusMsg struct {
	seq int
}
