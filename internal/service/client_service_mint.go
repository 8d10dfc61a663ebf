package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/validators"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type clientMintService struct {
	adapter  adapter.WalletAdapter
	wallet   ClientWalletService
	activity ClientActivityService

	validator validators.Validator

	logger *logger.Logger
}

// NewClientMintService creates the e-cash service. After a successful redeem
// the wallet state is refreshed so subscribers see the new balance.
func NewClientMintService(walletAdapter adapter.WalletAdapter, wallet ClientWalletService, activity ClientActivityService, logger *logger.Logger) ClientMintService {
	return &clientMintService{
		adapter:  walletAdapter,
		wallet:   wallet,
		activity: activity,
		logger:   logger,

		validator: validators.NewWalletRequestValidator(),
	}
}

func (s *clientMintService) RedeemEcash(ctx context.Context, token string) (models.RedeemResult, error) {
	log := s.logger.WithOperation(string(models.OperationRedeem))

	token = strings.TrimSpace(token)
	req := models.ReissueRequest{Notes: token}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.activity.Record(ctx, models.OperationRedeem, token, "", err)
		return models.RedeemResult{}, err
	}

	log.Debug().Int("token_len", len(token)).Msg("redeeming ecash")
	result, err := s.adapter.Reissue(ctx, req)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "clientMintService.RedeemEcash").Msg("redeem failed")
		s.activity.Record(ctx, models.OperationRedeem, token, "", err)
		return models.RedeemResult{}, err
	}

	log.Info().Int64("amount_sats", result.Amount().Sats()).Msg("ecash redeemed")
	s.activity.Record(ctx, models.OperationRedeem, token, app.MsgRedeemed, nil)

	if _, err = s.wallet.RefreshOpen(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh after redeem failed")
	}

	return result, nil
}
