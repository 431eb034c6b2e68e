// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-career-path/models"
)

// Machine is the single owner of the session view of the client: the
// current screen, the logged-in user and their profile.
//
// Every transition is total: a transition that is not allowed from the
// current state is a no-op and reports false. Asynchronous results are
// stamped with [Machine.Epoch] when they are requested; a result whose epoch
// is no longer current belongs to a previous session and is discarded.
type Machine struct {
	mu sync.RWMutex

	state   State
	user    string
	profile *models.Profile
	err     error
	epoch   uint64
}

// NewMachine returns a Machine in [StateLoading].
func NewMachine() *Machine {
	return &Machine{state: StateLoading}
}

// State returns the current screen.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the logged-in username, or "" before authentication.
func (m *Machine) User() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Profile returns a copy of the profile of the logged-in user.
func (m *Machine) Profile() (models.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.profile == nil {
		return models.Profile{}, false
	}
	return *m.profile, true
}

// HasProfile reports whether the logged-in user has a stored profile.
func (m *Machine) HasProfile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile != nil
}

// Err returns the reason of [StateError], or nil in any other state.
func (m *Machine) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// Epoch returns the current session epoch. It changes on every login,
// signup and logout.
func (m *Machine) Epoch() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// IsCurrent reports whether a result requested at epoch still belongs to the
// current session.
func (m *Machine) IsCurrent(epoch uint64) bool {
	return m.Epoch() == epoch
}

// Startup applies the outcome of session recovery: the learning plan for a
// session with a profile, the profile form for a session without one, and
// the auth screen otherwise.
func (m *Machine) Startup(user string, hasSession bool, profile *models.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !hasSession || user == "" {
		m.reset()
		m.state = StateAuth
		return
	}
	m.enter(user, profile)
}

// LoggedIn enters the session of user after a successful login.
func (m *Machine) LoggedIn(user string, profile *models.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enter(user, profile)
}

// SignedUp enters the session of a newly registered user. New identities
// never have a profile.
func (m *Machine) SignedUp(user string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enter(user, nil)
}

// ProfileSaved stores the profile produced by a submission that started at
// epoch. The machine moves to the learning plan only while the profile form
// is still on screen. A stale epoch is ignored and false is returned.
func (m *Machine) ProfileSaved(epoch uint64, profile models.Profile) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if epoch != m.epoch || m.user == "" {
		return false
	}

	m.profile = &profile
	if m.state == StateProfile || m.state == StateEditing {
		m.state = StateLearning
	}
	return true
}

// Edit opens the profile form in edit mode from the learning plan or the job
// finder.
func (m *Machine) Edit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile == nil || (m.state != StateLearning && m.state != StateJobs) {
		return false
	}
	m.state = StateEditing
	return true
}

// CancelEdit leaves edit mode for the learning plan. The profile form in
// create mode cannot be cancelled.
func (m *Machine) CancelEdit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing || m.profile == nil {
		return false
	}
	m.state = StateLearning
	return true
}

// Navigate switches between the learning plan and the job finder. Any other
// target, a missing profile or a screen outside the two makes it a no-op.
func (m *Machine) Navigate(target State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if target != StateLearning && target != StateJobs {
		return false
	}
	if m.profile == nil || (m.state != StateLearning && m.state != StateJobs) {
		return false
	}
	m.state = target
	return true
}

// Logout forgets the user and profile and returns to the auth screen. Results
// requested before the logout become stale.
func (m *Machine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	m.state = StateAuth
}

// Fail moves to [StateError] with reason.
func (m *Machine) Fail(reason error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateError
	m.err = reason
}

// Recover leaves [StateError] for the screen derived from the session and
// profile. It is a no-op in any other state.
func (m *Machine) Recover() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateError {
		m.err = nil
		m.state = m.derive()
	}
	return m.state
}

// Resolve checks the current combination before it is rendered. A screen
// that needs a profile without one, or any session screen without a user,
// lands in [StateError] with [ErrStateInvariant].
func (m *Machine) Resolve() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.state.needsProfile() && m.profile == nil:
		m.err = fmt.Errorf("%w: %s screen requested without a profile", ErrStateInvariant, m.state)
		m.state = StateError
	case m.state != StateAuth && m.state != StateLoading && m.state != StateError && m.user == "":
		m.err = fmt.Errorf("%w: %s screen requested without a session", ErrStateInvariant, m.state)
		m.state = StateError
	}
	return m.state
}

// enter starts a new session. Callers hold the lock.
func (m *Machine) enter(user string, profile *models.Profile) {
	m.epoch++
	m.user = user
	m.err = nil
	if profile != nil {
		p := *profile
		m.profile = &p
	} else {
		m.profile = nil
	}
	m.state = m.derive()
}

// reset clears the session. Callers hold the lock.
func (m *Machine) reset() {
	m.epoch++
	m.user = ""
	m.profile = nil
	m.err = nil
}

// derive returns the screen implied by the session and profile. Callers hold
// the lock.
func (m *Machine) derive() State {
	switch {
	case m.user == "":
		return StateAuth
	case m.profile == nil:
		return StateProfile
	default:
		return StateLearning
	}
}
