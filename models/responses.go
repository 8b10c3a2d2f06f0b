package models

// AuthResponse is returned by sign-up and sign-in: the user projection and
// a freshly issued bearer token.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

// ErrorDetail describes a single failure: its kind (validation, conflict,
// auth, not_found, forbidden, upstream, internal) and a human-readable message.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RepositoriesResponse wraps the repository listing.
type RepositoriesResponse struct {
	Repositories []Repository `json:"repositories"`
}

// CommitsResponse wraps the commit listing of a single repository.
type CommitsResponse struct {
	Commits []Commit `json:"commits"`
}

// BuildInfoResponse describes the running binary.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
