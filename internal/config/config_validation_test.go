package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *StructuredConfig)
		want   error
	}{
		{"valid", func(cfg *StructuredConfig) {}, nil},
		{"in-memory storage is valid", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, nil},
		{"missing sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing issuer", func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"non-positive duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = -1 }, ErrInvalidAppConfigs},
		{"hash cost too low", func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 }, ErrInvalidAppConfigs},
		{"hash cost too high", func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 }, ErrInvalidAppConfigs},
		{"no email domains", func(cfg *StructuredConfig) { cfg.App.AllowedEmailDomains = nil }, ErrInvalidAppConfigs},
		{"missing http address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"missing request timeout", func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, ErrInvalidServerConfigs},
		{"missing github owner", func(cfg *StructuredConfig) { cfg.Adapter.GitHub.Owner = "" }, ErrInvalidAdapterConfigs},
		{"missing github url", func(cfg *StructuredConfig) { cfg.Adapter.GitHub.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"zero github concurrency", func(cfg *StructuredConfig) { cfg.Adapter.GitHub.MaxConcurrency = 0 }, ErrInvalidAdapterConfigs},
		{"zero github timeout", func(cfg *StructuredConfig) { cfg.Adapter.GitHub.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
