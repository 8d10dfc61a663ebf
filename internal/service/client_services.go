package service

import (
	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/store"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

// ClientServices is the wallet contract consumed by the terminal UI and the
// debug API, plus the supporting journal, balance hub and watcher.
type ClientServices struct {
	WalletService    ClientWalletService
	BalanceService   ClientBalanceService
	MintService      ClientMintService
	LightningService ClientLightningService
	ActivityService  ClientActivityService
	AppInfoService   AppInfoService
	BalanceJob       ClientBalanceJob
}

func NewClientServices(storages *store.ClientStorages, walletAdapter adapter.WalletAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	activitySvc := NewClientActivityService(storages.ActivityRepository, logger)
	balanceSvc := NewClientBalanceService(logger)
	walletSvc := NewClientWalletService(walletAdapter, balanceSvc, activitySvc, logger)

	return &ClientServices{
		WalletService:    walletSvc,
		BalanceService:   balanceSvc,
		MintService:      NewClientMintService(walletAdapter, walletSvc, activitySvc, logger),
		LightningService: NewClientLightningService(walletAdapter, walletSvc, activitySvc, logger),
		ActivityService:  activitySvc,
		AppInfoService:   NewAppInfoService(buildInfo),
		BalanceJob:       NewClientBalanceJob(walletSvc, logger),
	}
}
