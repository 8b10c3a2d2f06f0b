// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists user accounts.
//
// [UserRepository] is implemented over PostgreSQL (pgx), SQLite
// (go-sqlite3) and process memory. Every implementation enforces unique
// e-mail and RUT values and reports a clash as [ErrUserAlreadyExists].
package store

import (
	"context"

	"github.com/MKhiriev/ucn-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the user-record store consumed by the services.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned ID and
	// timestamps. Returns [ErrUserAlreadyExists] if e-mail or RUT is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUser returns the first user matching every set field of filter.
	// Returns [ErrEmptyFilter] for an empty filter and [ErrNoUserWasFound]
	// when nothing matches.
	FindUser(ctx context.Context, filter models.UserFilter) (models.User, error)

	// FindUserByID returns the user with the given ID or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// SaveUser overwrites the mutable fields (email, name, birth date,
	// password hash) of the user identified by user.ID and returns the
	// stored record. Returns [ErrNoUserWasFound] for an unknown ID and
	// [ErrUserAlreadyExists] when the new e-mail belongs to someone else.
	SaveUser(ctx context.Context, user models.User) (models.User, error)
}
