// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-safe-share/internal/app"
	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/internal/store"
)

// UserMessage translates err into the message shown to the user. An
// abandoned upload is reported as such even when a crypto or blob error
// caused it; every other crypto failure keeps its own message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPartialUploadAbandoned):
		return app.MsgUploadAbandoned
	case errors.Is(err, crypto.ErrAuthenticationFailure):
		return app.MsgTamperingDetected
	case errors.Is(err, crypto.ErrInvalidKeyMaterial):
		return app.MsgInvalidKeyMaterial
	case errors.Is(err, crypto.ErrCryptoFailure):
		return app.MsgEncryptionFailed
	case errors.Is(err, store.ErrRecordNotFound), errors.Is(err, blob.ErrBlobNotFound):
		return app.MsgFileNotFound
	case errors.Is(err, blob.ErrBlobUnavailable):
		return app.MsgNetworkError
	case errors.Is(err, ErrInvalidFolderName):
		return app.MsgInvalidFolderName
	case errors.Is(err, ErrFolderNotEmpty):
		return app.MsgFolderNotEmpty
	case errors.Is(err, ErrFolderCycle):
		return app.MsgFolderCycle
	case errors.Is(err, ErrDestinationExists):
		return app.MsgDestinationExists
	case errors.Is(err, store.ErrRecordAlreadyExists):
		return app.MsgAlreadyExists
	default:
		return app.MsgUnexpectedError
	}
}
