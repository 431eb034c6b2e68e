// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/store"
	"github.com/MKhiriev/go-career-path/models"
)

type sessionService struct {
	identity IdentityService
	session  store.SessionStore
	logger   *logger.Logger
}

// NewSessionService constructs a [SessionService] that keeps the logged-in
// user in session.
func NewSessionService(identity IdentityService, session store.SessionStore, logger *logger.Logger) SessionService {
	return &sessionService{identity: identity, session: session, logger: logger}
}

func (s *sessionService) Login(ctx context.Context, username, credential string) models.AuthResult {
	if blank(username) || blank(credential) {
		return failure(app.MsgEmptyCredentials)
	}

	if err := s.identity.VerifyIdentity(ctx, username, credential); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return failure(app.MsgInvalidUsernamePassword)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionService.Login").
			Str("username", username).
			Msg("error verifying identity")
		return failure(app.MsgUnexpectedError)
	}

	s.session.SetCurrentUser(username)
	return models.AuthResult{Success: true, Message: app.MsgLoginSuccessful}
}

func (s *sessionService) Signup(ctx context.Context, username, credential string) models.AuthResult {
	if blank(username) || blank(credential) {
		return failure(app.MsgEmptyCredentials)
	}

	if err := s.identity.RegisterIdentity(ctx, username, credential); err != nil {
		if errors.Is(err, store.ErrIdentityAlreadyExists) {
			return failure(app.MsgUsernameAlreadyExists)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionService.Signup").
			Str("username", username).
			Msg("error registering identity")
		return failure(app.MsgUnexpectedError)
	}

	s.session.SetCurrentUser(username)
	return models.AuthResult{Success: true, Message: app.MsgSignupSuccessful}
}

func (s *sessionService) Logout() {
	s.session.ClearCurrentUser()
}

func (s *sessionService) CurrentUser() (string, bool) {
	user, err := s.session.CurrentUser()
	if err != nil {
		return "", false
	}
	return user, true
}

func failure(message string) models.AuthResult {
	return models.AuthResult{Success: false, Message: message}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
