package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from flag.CommandLine.
//
// Flags:
//
//	-a wallet daemon address in format [host]:[port]
//	-password wallet daemon password
//	-request-timeout daemon request timeout (e.g., "30s", "1m")
//	-gateway-id lightning gateway id
//	-federation-id federation id used for mint and lightning calls
//	-d activity journal sqlite file
//	-invite-code invite code pre-filled into the join form
//	-balance-interval balance polling interval (e.g., "5s")
//	-debug-address debug API address in format [host]:[port]
//	-log log file path
//	-c/-config json or yaml file path with configs
func ParseFlags() *StructuredConfig {
	var daemonAddress, debugAddress NetAddress
	var password string
	var requestTimeout time.Duration
	var gatewayID string
	var federationID string
	var databaseDSN string
	var inviteCode string
	var balanceInterval time.Duration
	var configPath string
	var logFile string

	flag.Var(&daemonAddress, "a", "Wallet daemon address host:port")
	flag.StringVar(&password, "password", "", "Wallet daemon password")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Daemon request timeout (e.g., 30s, 1m)")
	flag.StringVar(&gatewayID, "gateway-id", "", "Lightning gateway id")
	flag.StringVar(&federationID, "federation-id", "", "Federation id")
	flag.StringVar(&databaseDSN, "d", "", "Activity journal sqlite file")
	flag.StringVar(&inviteCode, "invite-code", "", "Invite code pre-filled into the join form")
	flag.DurationVar(&balanceInterval, "balance-interval", 0, "Balance polling interval (e.g., 5s)")
	flag.Var(&debugAddress, "debug-address", "Debug API address host:port")
	flag.StringVar(&logFile, "log", "", "Log file path")
	flag.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			InviteCode: inviteCode,
		},
		Adapter: Adapter{
			HTTPAddress:    daemonAddress.String(),
			Password:       password,
			RequestTimeout: requestTimeout,
			GatewayID:      gatewayID,
			FederationID:   federationID,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			BalanceInterval: balanceInterval,
		},
		Debug: Debug{
			HTTPAddress: debugAddress.String(),
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
