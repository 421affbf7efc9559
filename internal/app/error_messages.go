// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// safeshare client and the blob server.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, CLI output or log entries to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when a request cannot be decoded or
	// fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user addresses a
	// blob that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgBlobNotFound is returned by the blob server for unknown objects.
	MsgBlobNotFound = "blob not found"

	// MsgBlobTooLarge is returned when an upload exceeds the configured
	// size limit.
	MsgBlobTooLarge = "blob exceeds size limit"

	// MsgFileNotFound is shown when a file record or its blob is missing.
	MsgFileNotFound = "file not found"

	// MsgFolderNotFound is shown when a folder record is missing.
	MsgFolderNotFound = "folder not found"

	// MsgNetworkError is shown when the blob store or metadata store cannot
	// be reached. Retrying the whole operation may help.
	MsgNetworkError = "network error, please retry"

	// MsgTamperingDetected is shown when a file fails authentication. The
	// ciphertext, its nonce or its key no longer match.
	MsgTamperingDetected = "file failed integrity check and may have been tampered with"

	// MsgInvalidKeyMaterial is shown when the stored key cannot be imported.
	MsgInvalidKeyMaterial = "file key is damaged, the file cannot be decrypted"

	// MsgEncryptionFailed is shown when a cryptographic primitive fails.
	MsgEncryptionFailed = "encryption failed"

	// MsgUploadAbandoned is shown when an upload stopped before its record
	// was saved. The file was not stored and must be uploaded again.
	MsgUploadAbandoned = "upload did not complete, please upload the file again"

	// MsgInvalidFolderName is shown for empty or malformed folder names.
	MsgInvalidFolderName = "invalid folder name"

	// MsgFolderNotEmpty is shown when deleting a folder that still has
	// children.
	MsgFolderNotEmpty = "folder is not empty"

	// MsgFolderCycle is shown when a move would put a folder inside itself.
	MsgFolderCycle = "a folder cannot be moved into itself or its subfolders"

	// MsgDestinationExists is shown when a download target already exists.
	MsgDestinationExists = "destination file already exists"

	// MsgAlreadyExists is shown on id collisions in the metadata store.
	MsgAlreadyExists = "record already exists"

	// MsgUnexpectedError is shown for anything not covered above.
	MsgUnexpectedError = "unexpected error"
)
