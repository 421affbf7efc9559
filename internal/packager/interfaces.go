// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package packager turns a plaintext file into a storable encrypted bundle
// and back. It owns the per-file key lifecycle: a key is generated for each
// Seal, exported into the bundle and wiped from memory before returning.
package packager

//go:generate mockgen -source=interfaces.go -destination=../mock/file_packager_mock.go -package=mock

import "github.com/MKhiriev/go-safe-share/models"

// FilePackager seals and opens single files.
type FilePackager interface {
	// Seal encrypts plaintext under a freshly generated key and returns the
	// bundle with ciphertext, nonce, exported key and sizes. Any failure
	// returns no bundle.
	Seal(plaintext []byte, fileName, mimeType string) (models.EncryptedBundle, error)

	// Open imports the bundle key and decrypts the ciphertext. Tag
	// verification failures are returned as crypto.ErrAuthenticationFailure
	// and no plaintext is exposed.
	Open(bundle models.EncryptedBundle) (models.OpenedFile, error)
}
