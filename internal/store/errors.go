package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an attempt to register a new
	// identity fails because the username is already taken.
	ErrIdentityAlreadyExists = errors.New("identity already exists")

	// ErrIdentityNotFound is returned when no identity matches the username.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrProfileNotFound is returned when no profile was saved for the
	// username yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrSessionNotFound is returned when nobody is logged in.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingProfile is returned when a profile cannot be converted to or
	// from its stored JSON document.
	ErrEncodingProfile = errors.New("failed to encode profile")
)
