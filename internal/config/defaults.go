package config

import "time"

const (
	DefaultTokenIssuer      = "ucn-accounts"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "debug"

	DefaultHTTPAddress    = ":5000"
	DefaultRequestTimeout = 30 * time.Second

	DefaultGitHubBaseURL        = "https://api.github.com"
	DefaultGitHubOwner          = "Dizkm8"
	DefaultGitHubRequestTimeout = 10 * time.Second
	DefaultGitHubMaxConcurrency = 4
)

// DefaultAllowedEmailDomains are the institutional domains accepted when no
// list is configured.
var DefaultAllowedEmailDomains = []string{"ucn.cl", "alumnos.ucn.cl", "disc.ucn.cl", "ce.ucn.cl"}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         DefaultTokenIssuer,
			TokenDuration:       DefaultTokenDuration,
			PasswordHashCost:    DefaultPasswordHashCost,
			AllowedEmailDomains: append([]string(nil), DefaultAllowedEmailDomains...),
			LogLevel:            DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			GitHub: GitHub{
				BaseURL:        DefaultGitHubBaseURL,
				Owner:          DefaultGitHubOwner,
				RequestTimeout: DefaultGitHubRequestTimeout,
				MaxConcurrency: DefaultGitHubMaxConcurrency,
			},
		},
	}
}
