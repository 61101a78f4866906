// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoIdentityInContext is returned when a protected handler runs
	// without the auth middleware in front of it.
	ErrNoIdentityInContext = errors.New("no identity in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
