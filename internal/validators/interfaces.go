// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values crossing the boundary of the client:
// content returned by the generation service and job search filters entered
// by the user.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Generated content is loosely shaped JSON. Adapters decode it into the
// strongly typed models first (missing arrays become empty slices) and then
// run the ResponseValidator; any failure wraps ErrMalformedResponse.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
