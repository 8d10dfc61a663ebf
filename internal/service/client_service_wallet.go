package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/validators"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type clientWalletService struct {
	adapter  adapter.WalletAdapter
	balance  ClientBalanceService
	activity ClientActivityService

	validator validators.Validator

	open atomic.Bool

	// refreshMu orders read-and-publish so a slow Info reply cannot publish
	// after a newer one.
	refreshMu sync.Mutex

	logger *logger.Logger
}

// NewClientWalletService creates the wallet membership service. The open
// flag starts false until the first RefreshOpen or successful join.
func NewClientWalletService(walletAdapter adapter.WalletAdapter, balance ClientBalanceService, activity ClientActivityService, logger *logger.Logger) ClientWalletService {
	return &clientWalletService{
		adapter:  walletAdapter,
		balance:  balance,
		activity: activity,
		logger:   logger,

		validator: validators.NewWalletRequestValidator(),
	}
}

func (s *clientWalletService) IsOpen() bool {
	return s.open.Load()
}

func (s *clientWalletService) RefreshOpen(ctx context.Context) (bool, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	info, err := s.adapter.Info(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientWalletService.RefreshOpen").Msg("failed to read wallet info")
		return s.IsOpen(), mapAdapterError(err)
	}

	open := info.IsOpen()
	if previous := s.open.Swap(open); previous != open {
		s.logger.Info().Bool("open", open).Int("federations", len(info)).Msg("wallet open state changed")
	}
	s.balance.Publish(info.TotalAmount())

	return open, nil
}

func (s *clientWalletService) JoinFederation(ctx context.Context, inviteCode string) (models.JoinResult, error) {
	log := s.logger.WithOperation(string(models.OperationJoin))

	inviteCode = strings.TrimSpace(inviteCode)
	req := models.JoinRequest{InviteCode: inviteCode}
	if err := s.validator.Validate(ctx, req, validators.FieldInviteCode); err != nil {
		s.activity.Record(ctx, models.OperationJoin, inviteCode, "", err)
		return models.JoinResult{}, err
	}

	log.Debug().Msg("joining federation")
	result, err := s.adapter.Join(ctx, req)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "clientWalletService.JoinFederation").Msg("join failed")
		s.activity.Record(ctx, models.OperationJoin, inviteCode, "", err)
		return models.JoinResult{}, err
	}

	log.Info().Str("federation_id", result.ThisFederationID).Msg("joined federation")
	s.activity.Record(ctx, models.OperationJoin, inviteCode, app.MsgJoined, nil)

	// balance of the new federation; the watcher catches up if this fails
	if _, err = s.RefreshOpen(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh after join failed")
	}
	s.open.Store(true)

	return result, nil
}
