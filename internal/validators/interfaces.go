// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of the
// identity rules of the application.
//
// Core concepts:
//   - IsValidRUT: modulo-11 check-digit validation of Chilean national IDs.
//   - EmailValidator: format check plus organizational domain allow-list.
//   - Validator: generic interface to validate arbitrary values or structures,
//     with optional field-level scoping for targeted validation.
//
// This package decouples validation logic from transport layers and storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
