package service

import (
	"context"

	"github.com/MKhiriev/go-career-path/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IdentityService is the credential and profile store as seen by the rest of
// the client. Every call takes at least the configured latency so that
// pending states of the screens are observable.
type IdentityService interface {
	// RegisterIdentity stores a new identity. Returns
	// [store.ErrIdentityAlreadyExists] when the username is taken. Usernames
	// are matched exactly, without case folding.
	RegisterIdentity(ctx context.Context, username, credential string) error

	// VerifyIdentity succeeds only when credential equals the stored one
	// byte for byte. Returns [ErrInvalidCredentials] for a mismatch and for an
	// unknown username alike.
	VerifyIdentity(ctx context.Context, username, credential string) error

	// ReadProfile returns the stored profile of username, or nil when there
	// is none.
	ReadProfile(ctx context.Context, username string) (*models.Profile, error)

	// WriteProfile replaces the stored profile of username.
	WriteProfile(ctx context.Context, username string, profile models.Profile) error
}

// SessionService answers who is logged in and logs users in and out. Its
// mutating operations never fail with an error: they report an
// [models.AuthResult] the screens show as is.
type SessionService interface {
	// Login verifies the credentials and, on success, marks username as
	// logged in. A failed login leaves the current session untouched.
	Login(ctx context.Context, username, credential string) models.AuthResult

	// Signup registers username and, on success, marks it as logged in.
	Signup(ctx context.Context, username, credential string) models.AuthResult

	// Logout forgets the logged-in user. Safe to call repeatedly.
	Logout()

	// CurrentUser returns the logged-in username and whether there is one.
	CurrentUser() (string, bool)
}

// ProfileService turns resume text and a career goal into a stored profile.
type ProfileService interface {
	// Submit validates the input, asks the generator for a profile exactly
	// once and, on success, stores it for username replacing the previous
	// one. Blank input fails with [ErrValidation] without calling the
	// generator; generator errors are returned unchanged and nothing is
	// stored.
	Submit(ctx context.Context, username, resumeText, careerGoal string) (models.Profile, error)
}

// PlanService generates learning plans.
type PlanService interface {
	// Build returns a fresh learning plan for profile.
	Build(ctx context.Context, profile models.Profile) ([]models.LearningModule, error)
}

// JobService searches job openings.
type JobService interface {
	// Search validates filters and returns matching jobs. An empty result is
	// not an error.
	Search(ctx context.Context, profile models.Profile, filters models.JobFilters) ([]models.Job, error)
}
