// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
)

// KeyWrapper protects a raw file key under a user-held secret.
//
// Wrapping is not part of the upload and download flow: file keys are stored
// raw in the metadata record. Wrappers exist for the sharing path only.
type KeyWrapper interface {
	// Wrap encrypts a raw 32-byte file key.
	Wrap(rawKey []byte) ([]byte, error)

	// Unwrap recovers the raw file key. Fails with ErrAuthenticationFailure
	// when the wrapped blob was not produced for this wrapper's secret.
	Unwrap(wrapped []byte) ([]byte, error)
}

// ErrNoIdentity is returned by an [AgeKeyWrapper] created without an
// identity when asked to unwrap.
var ErrNoIdentity = errors.New("no identity to unwrap with")

// AgeKeyWrapper wraps file keys to an X25519 public key using age.
// A wrapper built with only a recipient can wrap but not unwrap.
type AgeKeyWrapper struct {
	recipient age.Recipient
	identity  age.Identity
}

// NewAgeKeyWrapper returns a wrapper encrypting to recipient and, when
// identity is not nil, decrypting with identity.
func NewAgeKeyWrapper(recipient age.Recipient, identity age.Identity) *AgeKeyWrapper {
	return &AgeKeyWrapper{recipient: recipient, identity: identity}
}

// Wrap implements [KeyWrapper].
func (w *AgeKeyWrapper) Wrap(rawKey []byte) ([]byte, error) {
	if len(rawKey) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyMaterial, len(rawKey), KeySize)
	}
	if w.recipient == nil {
		return nil, fmt.Errorf("%w: no recipient to wrap to", ErrCryptoFailure)
	}

	var buf bytes.Buffer
	enc, err := age.Encrypt(&buf, w.recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: creating encrypted writer: %w", ErrCryptoFailure, err)
	}
	if _, err := enc.Write(rawKey); err != nil {
		return nil, fmt.Errorf("%w: wrapping key: %w", ErrCryptoFailure, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalizing wrapped key: %w", ErrCryptoFailure, err)
	}

	return buf.Bytes(), nil
}

// Unwrap implements [KeyWrapper].
func (w *AgeKeyWrapper) Unwrap(wrapped []byte) ([]byte, error) {
	if w.identity == nil {
		return nil, ErrNoIdentity
	}

	dec, err := age.Decrypt(bytes.NewReader(wrapped), w.identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	rawKey, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}
	if len(rawKey) != KeySize {
		return nil, fmt.Errorf("%w: unwrapped key is %d bytes", ErrInvalidKeyMaterial, len(rawKey))
	}

	return rawKey, nil
}
