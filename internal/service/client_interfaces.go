package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientWalletService is the membership side of the wallet contract: the
// cached open flag and federation join.
type ClientWalletService interface {
	// IsOpen reports the cached federation-join status. It never blocks.
	IsOpen() bool

	// RefreshOpen re-reads the joined federations from the daemon, updates
	// the cached open flag and publishes the summed balance to balance
	// subscribers. Returns the fresh open flag.
	RefreshOpen(ctx context.Context) (bool, error)

	// JoinFederation joins the federation described by inviteCode. On
	// success the open flag becomes true.
	JoinFederation(ctx context.Context, inviteCode string) (models.JoinResult, error)
}

// ClientBalanceService fans balance updates out to subscribers.
type ClientBalanceService interface {
	// SubscribeBalance registers fn for balance updates. When a balance is
	// already known fn receives it right away. The returned function
	// releases the subscription; calling it more than once is a no-op.
	SubscribeBalance(fn func(models.Amount)) (unsubscribe func())

	// Publish stores balance and notifies subscribers when it differs from
	// the last published value. The first call always notifies. Reports
	// whether subscribers were notified.
	Publish(balance models.Amount) bool

	// Balance returns the last published value and whether one exists.
	Balance() (models.Amount, bool)
}

// ClientMintService redeems out-of-band e-cash.
type ClientMintService interface {
	// RedeemEcash reissues the notes encoded in token into the wallet.
	RedeemEcash(ctx context.Context, token string) (models.RedeemResult, error)
}

// ClientLightningService sends and receives Lightning payments.
type ClientLightningService interface {
	// PayInvoice pays a BOLT11 invoice.
	PayInvoice(ctx context.Context, invoice string) (models.PayResult, error)

	// CreateInvoice generates an invoice for amountSats. Returns
	// [ErrInvalidAmount] when amountSats is not positive.
	CreateInvoice(ctx context.Context, amountSats int64, description string) (models.Invoice, error)
}

// ClientActivityService keeps the local journal of operation outcomes.
type ClientActivityService interface {
	// Record appends the outcome of one operation. A nil opErr records a
	// success with successMsg; otherwise the error text is recorded.
	// Journal failures are logged and never returned.
	Record(ctx context.Context, kind models.OperationKind, input, successMsg string, opErr error)

	// Recent returns up to limit journal entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.Operation, error)
}

// ClientBalanceJob defines the contract for the background worker that
// polls the daemon and refreshes balance and open state.
type ClientBalanceJob interface {
	// Start polls once right away and then every interval, defaulting to
	// 5 seconds if interval is zero or negative. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
}
