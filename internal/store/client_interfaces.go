package store

import (
	"context"

	"github.com/MKhiriev/go-career-path/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// IdentityRepository is the durable username → credential map.
type IdentityRepository interface {
	// CreateIdentity inserts a new identity. Returns [ErrIdentityAlreadyExists]
	// when the username is taken.
	CreateIdentity(ctx context.Context, identity models.Identity) error

	// FindIdentity returns the identity stored for username, or
	// [ErrIdentityNotFound].
	FindIdentity(ctx context.Context, username string) (models.Identity, error)
}

// ProfileRepository is the durable username → profile map.
type ProfileRepository interface {
	// SaveProfile stores profile for username, replacing any previous one.
	SaveProfile(ctx context.Context, username string, profile models.Profile) error

	// GetProfile returns the profile stored for username, or
	// [ErrProfileNotFound].
	GetProfile(ctx context.Context, username string) (models.Profile, error)
}

// SessionStore holds the "current logged-in user" marker. It lives only as
// long as the client process.
type SessionStore interface {
	// SetCurrentUser marks username as logged in.
	SetCurrentUser(username string)

	// CurrentUser returns the logged-in username, or [ErrSessionNotFound].
	CurrentUser() (string, error)

	// ClearCurrentUser forgets the logged-in user. Safe to call repeatedly.
	ClearCurrentUser()
}
