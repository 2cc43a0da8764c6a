package config

import (
	"errors"
	"flag"
	"os"
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

func (a NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "[host]:[port]" string into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portString, found := strings.Cut(value, ":")
	if !found {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-secure-cookie mark the auth cookie as Secure
//	-rating-reconcile-interval period of the background rating reconciler
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

// parseFlagSet registers and parses flags on the given flag set. Factored out
// of [ParseFlags] so tests can parse an arbitrary argument list without
// touching the process-wide flag state.
func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var secureCookie bool
	var ratingReconcileInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Mark the auth cookie as Secure")
	fs.DurationVar(&ratingReconcileInterval, "rating-reconcile-interval", 0, "Period of the background rating reconciler (0 disables)")

	// ExitOnError flag sets never return a parse error.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SecureCookie:  secureCookie,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RatingReconcileInterval: ratingReconcileInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
