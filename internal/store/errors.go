package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a write would give two users the
	// same e-mail or RUT.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmptyFilter is returned by FindUser when the filter has neither an
	// e-mail nor a RUT.
	ErrEmptyFilter = errors.New("empty user filter")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// database driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement or scanning
	// its result fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
