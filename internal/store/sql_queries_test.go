// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertIdentityQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildInsertIdentityQuery("alice", "pw1", now)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO identities (username,credential,created_at) VALUES (?,?,?)", query)
	assert.Equal(t, []any{"alice", "pw1", now}, args)
}

func TestBuildSelectIdentityQuery(t *testing.T) {
	query, args, err := buildSelectIdentityQuery("alice")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM identities")
	assert.Contains(t, query, "WHERE username = ?")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"alice"}, args)
}

func TestBuildUpsertProfileQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildUpsertProfileQuery("alice", []byte(`{"name":"Jane"}`), now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO profiles (username,profile,updated_at) VALUES (?,?,?)"))
	assert.Contains(t, query, "ON CONFLICT(username) DO UPDATE SET profile = excluded.profile")
	assert.Equal(t, []any{"alice", `{"name":"Jane"}`, now}, args)
}

func TestBuildSelectProfileQuery(t *testing.T) {
	query, args, err := buildSelectProfileQuery("alice")
	require.NoError(t, err)

	assert.Equal(t, "SELECT profile FROM profiles WHERE username = ?", query)
	assert.Equal(t, []any{"alice"}, args)
}
