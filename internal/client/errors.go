// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoOwnerID is returned when neither a user id nor a token with a
	// "sub" claim is configured.
	ErrNoOwnerID = errors.New("cannot determine user id")

	// ErrPassphraseMismatch is returned by `keys generate` when the two
	// passphrase prompts differ.
	ErrPassphraseMismatch = errors.New("passphrases do not match")

	// ErrUploadIncomplete is returned when at least one file of an upload
	// batch was not stored.
	ErrUploadIncomplete = errors.New("some files were not uploaded")

	// ErrUnrecognizedBackup is returned by `keys unwrap` for input that is
	// neither an armored age message nor a base64 passphrase export.
	ErrUnrecognizedBackup = errors.New("unrecognized key backup")
)
