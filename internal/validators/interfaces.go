// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks metadata records before the store layer
// persists them.
//
// The record validator rejects file and folder rows with blank identifiers,
// missing key material, inconsistent sizes or an unknown bundle format.
// Repositories take a Validator so tests can swap it.
package validators

import "context"

// Validator validates v. fields optionally narrows the check to the named
// fields; an empty list validates everything the implementation knows.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
