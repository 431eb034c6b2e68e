// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/mock"
	"github.com/MKhiriev/go-career-path/internal/store"
	"github.com/MKhiriev/go-career-path/models"
)

// newTestSessionSvc builds a sessionService over a mocked identity service
// and a real in-memory session marker
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockIdentityService, store.SessionStore) {
	t.Helper()
	identity := mock.NewMockIdentityService(ctrl)
	session := store.NewSessionStore()

	svc := NewSessionService(identity, session, logger.Nop()).(*sessionService)
	return svc, identity, session
}

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, _ := newTestSessionSvc(t, ctrl)

	identity.EXPECT().VerifyIdentity(gomock.Any(), "alice", "pw1").Return(nil)

	result := svc.Login(context.Background(), "alice", "pw1")
	assert.Equal(t, models.AuthResult{Success: true, Message: app.MsgLoginSuccessful}, result)

	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestSessionService_Login_WrongCredentialKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, session := newTestSessionSvc(t, ctrl)
	session.SetCurrentUser("bob")

	identity.EXPECT().VerifyIdentity(gomock.Any(), "alice", "wrong").Return(ErrInvalidCredentials)
	// the credential store must not be written to
	identity.EXPECT().RegisterIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result := svc.Login(context.Background(), "alice", "wrong")
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidUsernamePassword, result.Message)

	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "bob", user)
}

func TestSessionService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, _ := newTestSessionSvc(t, ctrl)

	identity.EXPECT().VerifyIdentity(gomock.Any(), "alice", "pw1").Return(errors.New("database is locked"))

	result := svc.Login(context.Background(), "alice", "pw1")
	assert.Equal(t, models.AuthResult{Success: false, Message: app.MsgUnexpectedError}, result)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestSessionService_EmptyFieldsNeverReachStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, _ := newTestSessionSvc(t, ctrl)

	identity.EXPECT().VerifyIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	identity.EXPECT().RegisterIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, pair := range [][2]string{{"", "pw"}, {"alice", ""}, {"  ", "pw"}, {"alice", "\t"}} {
		login := svc.Login(context.Background(), pair[0], pair[1])
		signup := svc.Signup(context.Background(), pair[0], pair[1])

		assert.Equal(t, models.AuthResult{Message: app.MsgEmptyCredentials}, login)
		assert.Equal(t, models.AuthResult{Message: app.MsgEmptyCredentials}, signup)
	}
}

func TestSessionService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, _ := newTestSessionSvc(t, ctrl)

	identity.EXPECT().RegisterIdentity(gomock.Any(), "alice", "pw1").Return(nil)

	result := svc.Signup(context.Background(), "alice", "pw1")
	assert.Equal(t, models.AuthResult{Success: true, Message: app.MsgSignupSuccessful}, result)

	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestSessionService_Signup_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, _ := newTestSessionSvc(t, ctrl)

	identity.EXPECT().RegisterIdentity(gomock.Any(), "alice", "pw1").Return(store.ErrIdentityAlreadyExists)

	result := svc.Signup(context.Background(), "alice", "pw1")
	assert.Equal(t, models.AuthResult{Success: false, Message: app.MsgUsernameAlreadyExists}, result)

	_, ok := svc.CurrentUser()
	assert.False(t, ok, "failed signup must not establish a session")
}

func TestSessionService_LogoutIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session := newTestSessionSvc(t, ctrl)
	session.SetCurrentUser("alice")

	svc.Logout()
	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	svc.Logout()
	_, ok = svc.CurrentUser()
	assert.False(t, ok)
}
