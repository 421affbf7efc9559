// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a blob route is called
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrOwnerMismatch is returned when the addressed owner differs from the
	// token subject.
	ErrOwnerMismatch = errors.New("owner does not match token subject")

	// ErrEmptyBody is returned for uploads without a body.
	ErrEmptyBody = errors.New("empty request body")
)
