package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. The
// same struct serves JSON and YAML, the format is picked by extension.
type StructuredFileConfig struct {
	App struct {
		InviteCode string `json:"invite_code" yaml:"invite_code"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		Password       string   `json:"password" yaml:"password"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		GatewayID      string   `json:"gateway_id" yaml:"gateway_id"`
		FederationID   string   `json:"federation_id" yaml:"federation_id"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		BalanceInterval Duration `json:"balance_interval" yaml:"balance_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Debug struct {
		HTTPAddress string `json:"http_address" yaml:"http_address"`
	} `json:"debug,omitempty" yaml:"debug,omitempty"`

	Log struct {
		File string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			InviteCode: fileCfg.App.InviteCode,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			Password:       fileCfg.Adapter.Password,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			GatewayID:      fileCfg.Adapter.GatewayID,
			FederationID:   fileCfg.Adapter.FederationID,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			BalanceInterval: time.Duration(fileCfg.Workers.BalanceInterval),
		},
		Debug: Debug{
			HTTPAddress: fileCfg.Debug.HTTPAddress,
		},
		Log: Log{
			File: fileCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings
// like "1h", "30s" as well as from raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var nanos int64
	if err := node.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
