package config

import (
	"fmt"
	"time"
)

// ClientApp holds front-end settings derived from the structured config.
type ClientApp struct {
	// InviteCode is pre-filled into the join form.
	InviteCode string
}

// ClientAdapter holds the wallet daemon transport settings.
type ClientAdapter struct {
	// HTTPAddress is the daemon base URL or host:port.
	HTTPAddress string
	// Password is the daemon bearer password.
	Password string
	// RequestTimeout is the timeout for every daemon request.
	RequestTimeout time.Duration
	// GatewayID optionally pins the Lightning gateway.
	GatewayID string
	// FederationID optionally pins the federation.
	FederationID string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the sqlite file path of the activity journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BalanceInterval defines how often the balance watcher polls.
	BalanceInterval time.Duration
}

// ClientDebug contains the debug API settings.
type ClientDebug struct {
	// HTTPAddress enables the debug API when non-empty.
	HTTPAddress string
}

// ClientLog contains logging settings.
type ClientLog struct {
	// File is the log file path; empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Debug   ClientDebug
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			InviteCode: cfg.App.InviteCode,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Password:       cfg.Adapter.Password,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			GatewayID:      cfg.Adapter.GatewayID,
			FederationID:   cfg.Adapter.FederationID,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{BalanceInterval: cfg.Workers.BalanceInterval},
		Debug:   ClientDebug{HTTPAddress: cfg.Debug.HTTPAddress},
		Log:     ClientLog{File: cfg.Log.File},
	}
}
