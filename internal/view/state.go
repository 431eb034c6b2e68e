// Package view holds the top-level screen controller of the client: a small
// finite-state machine that decides which screen is shown from the session,
// the stored profile and the navigation the user asked for.
package view

import "errors"

// State is a top-level screen of the client.
type State int

const (
	// StateLoading is shown while the session is being recovered at startup.
	StateLoading State = iota
	// StateAuth is the pre-authentication screen.
	StateAuth
	// StateProfile is the profile form in create mode.
	StateProfile
	// StateEditing is the profile form in edit mode.
	StateEditing
	// StateLearning shows the learning plan.
	StateLearning
	// StateJobs shows the job finder.
	StateJobs
	// StateError is the recoverable fallback for invariant violations and
	// explicit failures.
	StateError
)

var stateNames = map[State]string{
	StateLoading:  "loading",
	StateAuth:     "auth",
	StateProfile:  "profile",
	StateEditing:  "editing",
	StateLearning: "learning",
	StateJobs:     "jobs",
	StateError:    "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// needsProfile reports whether the screen can only be shown for a stored
// profile.
func (s State) needsProfile() bool {
	return s == StateEditing || s == StateLearning || s == StateJobs
}

// ErrStateInvariant is reported when the machine ends up in a combination
// that has no valid screen, such as the learning plan without a profile.
var ErrStateInvariant = errors.New("application state is inconsistent")
