// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Server.validate(); err != nil {
		return err
	}
	return cfg.Adapter.validate()
}

func (a App) validate() error {
	switch {
	case a.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case a.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case a.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, a.PasswordHashCost)
	case len(a.AllowedEmailDomains) == 0:
		return fmt.Errorf("%w: at least one e-mail domain is required", ErrInvalidAppConfigs)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" || s.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (a Adapter) validate() error {
	gh := a.GitHub
	if gh.BaseURL == "" || gh.Owner == "" || gh.RequestTimeout <= 0 || gh.MaxConcurrency < 1 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
