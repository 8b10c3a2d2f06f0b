// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the outbound integrations of the
// ucn-accounts server.
//
// The only integration is GitHub: [GitHubAdapter] lists the public
// repositories and commits of one configured owner over the GitHub REST API
// ([NewGitHubAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/ucn-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter reads repository data of a single GitHub owner.
type GitHubAdapter interface {
	// ListRepositories returns the owner's repositories as GitHub lists
	// them. CommitsCount is left zero.
	ListRepositories(ctx context.Context) ([]models.Repository, error)

	// ListCommits returns the first page of commits of the owner's
	// repository repoName. Returns [ErrNotFound] (wrapped) for an unknown
	// repository.
	ListCommits(ctx context.Context, repoName string) ([]models.Commit, error)
}
