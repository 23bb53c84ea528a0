package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the daemon flags from args (without the program name).
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-b bridge base URL
//	-d database DSN
//	-c/-config json file path with configs
//	-profiles capability profiles YAML file
//	-token-sign-key control API token signing key
//	-token-issuer token issuer name
//	-request-timeout control API request timeout (e.g. "30s")
//	-adapter-timeout bridge request timeout (e.g. "30s")
//	-pull-interval, -push-interval, -push-offset scheduling
//	-protection-interval, -refresh-interval shared-contact protection
//	-push-concurrency batch push group size
//	-change-skip push change-skip policy (timestamp|never)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var bridgeAddress string
	var databaseDSN string
	var jsonConfigPath string
	var profilesFile string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var pullInterval, pushInterval, pushOffset time.Duration
	var protectionInterval, refreshInterval time.Duration
	var pushConcurrency int
	var changeSkip string

	fs := flag.NewFlagSet("contactsync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.StringVar(&bridgeAddress, "b", "", "Bridge base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&profilesFile, "profiles", "", "Capability profiles YAML file")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Control API request timeout (e.g., 30s)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Bridge request timeout (e.g., 30s)")
	fs.DurationVar(&pullInterval, "pull-interval", 0, "Scheduled pull interval")
	fs.DurationVar(&pushInterval, "push-interval", 0, "Scheduled push interval")
	fs.DurationVar(&pushOffset, "push-offset", 0, "Delay of the first push after the first pull")
	fs.DurationVar(&protectionInterval, "protection-interval", 0, "Shared-contact edit detection interval")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Shared-contact refresh interval")
	fs.IntVar(&pushConcurrency, "push-concurrency", 0, "Batch push group size")
	fs.StringVar(&changeSkip, "change-skip", "", "Push change-skip policy (timestamp|never)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    bridgeAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			PullInterval:       pullInterval,
			PushInterval:       pushInterval,
			PushOffset:         pushOffset,
			ProtectionInterval: protectionInterval,
			RefreshInterval:    refreshInterval,
			PushConcurrency:    pushConcurrency,
		},
		Sync:         Sync{ChangeSkip: changeSkip},
		Capabilities: Capabilities{ProfilesFile: profilesFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
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
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
