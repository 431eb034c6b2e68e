// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is a registered account of the career-path client.
// It is created on signup and never mutated or deleted afterwards.
type Identity struct {
	// Username is the unique, case-sensitive account key.
	Username string `json:"username"`

	// Credential is the secret supplied on signup. It is stored and compared
	// verbatim.
	Credential string `json:"-"`

	// CreatedAt is the moment the identity was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}

// AuthResult is the outcome of a login or signup attempt. Session operations
// never return Go errors to the UI; they report success or a human-readable
// reason instead.
type AuthResult struct {
	Success bool
	Message string
}
