package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList is a comma separated flag.Value.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = splitList(s)
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-hash-cost bcrypt cost factor
//	-email-domains comma separated e-mail domain allow-list
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-github-url GitHub API base url
//	-github-owner GitHub account whose repositories are listed
//	-github-token GitHub access token
//	-github-timeout GitHub request timeout
//	-github-concurrency parallel GitHub commit lookups
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var emailDomains stringList
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("ucn-accounts", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "hash-cost", 0, "bcrypt cost factor")
	fs.Var(&emailDomains, "email-domains", "Comma separated allowed e-mail domains")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.GitHub.BaseURL, "github-url", "", "GitHub API base url")
	fs.StringVar(&cfg.Adapter.GitHub.Owner, "github-owner", "", "GitHub repositories owner")
	fs.StringVar(&cfg.Adapter.GitHub.Token, "github-token", "", "GitHub access token")
	fs.DurationVar(&cfg.Adapter.GitHub.RequestTimeout, "github-timeout", 0, "GitHub request timeout")
	fs.IntVar(&cfg.Adapter.GitHub.MaxConcurrency, "github-concurrency", 0, "Parallel GitHub commit lookups")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.App.AllowedEmailDomains = emailDomains

	return cfg, nil
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
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// splitList splits a comma separated value, trimming blanks and dropping
// empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var (
	_ flag.Value = (*NetAddress)(nil)
	_ flag.Value = (*stringList)(nil)
)
