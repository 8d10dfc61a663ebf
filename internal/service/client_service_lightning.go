package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/validators"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type clientLightningService struct {
	adapter  adapter.WalletAdapter
	wallet   ClientWalletService
	activity ClientActivityService

	validator validators.Validator

	logger *logger.Logger
}

// NewClientLightningService creates the Lightning service.
func NewClientLightningService(walletAdapter adapter.WalletAdapter, wallet ClientWalletService, activity ClientActivityService, logger *logger.Logger) ClientLightningService {
	return &clientLightningService{
		adapter:  walletAdapter,
		wallet:   wallet,
		activity: activity,
		logger:   logger,

		validator: validators.NewWalletRequestValidator(),
	}
}

func (s *clientLightningService) PayInvoice(ctx context.Context, invoice string) (models.PayResult, error) {
	log := s.logger.WithOperation(string(models.OperationPay))

	invoice = strings.TrimSpace(invoice)
	req := models.PayRequest{PaymentInfo: invoice}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.activity.Record(ctx, models.OperationPay, invoice, "", err)
		return models.PayResult{}, err
	}

	log.Debug().Msg("paying invoice")
	result, err := s.adapter.Pay(ctx, req)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "clientLightningService.PayInvoice").Msg("payment failed")
		s.activity.Record(ctx, models.OperationPay, invoice, "", err)
		return models.PayResult{}, err
	}

	log.Info().Str("operation_id", result.OperationID).Int64("fee_msat", result.Fee).Msg("invoice paid")
	s.activity.Record(ctx, models.OperationPay, invoice, app.MsgPaid, nil)

	if _, err = s.wallet.RefreshOpen(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh after payment failed")
	}

	return result, nil
}

func (s *clientLightningService) CreateInvoice(ctx context.Context, amountSats int64, description string) (models.Invoice, error) {
	log := s.logger.WithOperation(string(models.OperationInvoice))
	input := strconv.FormatInt(amountSats, 10)

	req, err := newInvoiceRequest(amountSats, description)
	if err == nil {
		err = s.validator.Validate(ctx, req, validators.FieldAmount)
	}
	if err != nil {
		s.activity.Record(ctx, models.OperationInvoice, input, "", err)
		return models.Invoice{}, err
	}

	log.Debug().Int64("amount_sats", amountSats).Msg("creating invoice")
	invoice, err := s.adapter.CreateInvoice(ctx, req)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "clientLightningService.CreateInvoice").Int64("amount_sats", amountSats).Msg("invoice failed")
		s.activity.Record(ctx, models.OperationInvoice, input, "", err)
		return models.Invoice{}, err
	}

	log.Info().Str("operation_id", invoice.OperationID).Int64("amount_sats", amountSats).Msg("invoice created")
	s.activity.Record(ctx, models.OperationInvoice, input, app.MsgInvoiceCreated, nil)

	return invoice, nil
}

// newInvoiceRequest converts amountSats to millisatoshis. Non-positive
// amounts map to zero so the validator reports them.
func newInvoiceRequest(amountSats int64, description string) (models.InvoiceRequest, error) {
	req := models.InvoiceRequest{Description: description}
	if amountSats <= 0 {
		return req, nil
	}
	if !models.SatsInRange(amountSats) {
		return req, ErrAmountTooLarge
	}

	req.AmountMsat = models.AmountFromSats(amountSats).Msats()
	return req, nil
}
