package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/mock"
	"github.com/MKhiriev/go-career-path/internal/store"
	"github.com/MKhiriev/go-career-path/internal/view"
	"github.com/MKhiriev/go-career-path/models"
)

// memIdentity is an in-memory IdentityService used to drive whole sessions.
type memIdentity struct {
	mu          sync.Mutex
	credentials map[string]string
	profiles    map[string]models.Profile
}

func newMemIdentity() *memIdentity {
	return &memIdentity{credentials: map[string]string{}, profiles: map[string]models.Profile{}}
}

func (m *memIdentity) RegisterIdentity(_ context.Context, username, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.credentials[username]; ok {
		return store.ErrIdentityAlreadyExists
	}
	m.credentials[username] = credential
	return nil
}

func (m *memIdentity) VerifyIdentity(_ context.Context, username, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.credentials[username]
	if !ok || stored != credential {
		return ErrInvalidCredentials
	}
	return nil
}

func (m *memIdentity) ReadProfile(_ context.Context, username string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[username]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memIdentity) WriteProfile(_ context.Context, username string, profile models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[username] = profile
	return nil
}

type scenario struct {
	identity *memIdentity
	sessions SessionService
	profiles ProfileService
	machine  *view.Machine
	gen      *mock.MockGenerator
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	ctrl := gomock.NewController(t)
	identity := newMemIdentity()
	gen := mock.NewMockGenerator(ctrl)

	return &scenario{
		identity: identity,
		sessions: NewSessionService(identity, store.NewSessionStore(), logger.Nop()),
		profiles: NewProfileService(identity, gen, logger.Nop()),
		machine:  view.NewMachine(),
		gen:      gen,
	}
}

// login mirrors what the client does after a successful login.
func (s *scenario) login(t *testing.T, username, credential string) models.AuthResult {
	t.Helper()
	result := s.sessions.Login(context.Background(), username, credential)
	if result.Success {
		profile, err := s.identity.ReadProfile(context.Background(), username)
		require.NoError(t, err)
		s.machine.LoggedIn(username, profile)
	}
	return result
}

func TestScenario_SignupCreateProfileLogoutLogin(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	s.machine.Startup("", false, nil)
	require.Equal(t, view.StateAuth, s.machine.State())

	result := s.sessions.Signup(ctx, "alice", "pw1")
	require.Equal(t, models.AuthResult{Success: true, Message: app.MsgSignupSuccessful}, result)
	s.machine.SignedUp("alice")
	assert.Equal(t, view.StateProfile, s.machine.State())

	profile := models.Profile{Name: "Jane Doe", Skills: []string{"React"}, CareerGoal: "Senior Frontend Developer"}
	s.gen.EXPECT().
		ExtractProfile(gomock.Any(), "Jane Doe, 5 years frontend", "Senior Frontend Developer").
		Return(profile, nil).
		Times(1)

	epoch := s.machine.Epoch()
	saved, err := s.profiles.Submit(ctx, s.machine.User(), "Jane Doe, 5 years frontend", "Senior Frontend Developer")
	require.NoError(t, err)
	require.True(t, s.machine.ProfileSaved(epoch, saved))
	assert.Equal(t, view.StateLearning, s.machine.State())

	s.sessions.Logout()
	s.machine.Logout()
	assert.Equal(t, view.StateAuth, s.machine.State())
	_, ok := s.sessions.CurrentUser()
	assert.False(t, ok)

	result = s.login(t, "alice", "pw1")
	require.True(t, result.Success)
	assert.Equal(t, app.MsgLoginSuccessful, result.Message)
	assert.Equal(t, view.StateLearning, s.machine.State())

	got, ok := s.machine.Profile()
	require.True(t, ok)
	assert.Equal(t, "Senior Frontend Developer", got.CareerGoal)
}

func TestScenario_WrongPasswordKeepsAuthScreen(t *testing.T) {
	s := newScenario(t)
	s.machine.Startup("", false, nil)
	require.True(t, s.sessions.Signup(context.Background(), "alice", "pw1").Success)
	s.sessions.Logout()

	result := s.login(t, "alice", "pw2")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidUsernamePassword, result.Message)
	assert.Equal(t, view.StateAuth, s.machine.State())

	_, ok := s.sessions.CurrentUser()
	assert.False(t, ok)
}

func TestScenario_DuplicateSignup(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	require.True(t, s.sessions.Signup(ctx, "alice", "pw1").Success)
	s.sessions.Logout()

	result := s.sessions.Signup(ctx, "alice", "other")
	assert.Equal(t, models.AuthResult{Success: false, Message: app.MsgUsernameAlreadyExists}, result)

	// the first credential still works
	assert.True(t, s.sessions.Login(ctx, "alice", "pw1").Success)
}

func TestScenario_SubmissionAfterLogoutIsDiscarded(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	require.True(t, s.sessions.Signup(ctx, "alice", "pw1").Success)
	s.machine.SignedUp("alice")

	s.gen.EXPECT().ExtractProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{Name: "Jane"}, nil)

	epoch := s.machine.Epoch()
	user := s.machine.User()

	// user logs out while generation is in flight
	s.sessions.Logout()
	s.machine.Logout()

	saved, err := s.profiles.Submit(ctx, user, "resume", "goal")
	require.NoError(t, err)
	assert.False(t, s.machine.ProfileSaved(epoch, saved))
	assert.Equal(t, view.StateAuth, s.machine.State())
	assert.False(t, s.machine.HasProfile())
}
