// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-career-path/models"
)

var identitiesTable = models.Identity{}.TableName()

const profilesTable = "profiles"

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertIdentityQuery(username, credential string, createdAt time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(identitiesTable).
		Columns("username", "credential", "created_at").
		Values(username, credential, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectIdentityQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select("username", "credential", "created_at").
		From(identitiesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertProfileQuery inserts the profile document or replaces the stored
// one for the same username.
func buildUpsertProfileQuery(username string, document []byte, updatedAt time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(profilesTable).
		Columns("username", "profile", "updated_at").
		Values(username, string(document), updatedAt).
		Suffix("ON CONFLICT(username) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectProfileQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select("profile").
		From(profilesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
