// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the crypto layer. Callers match them with [errors.Is];
// the underlying cause is wrapped alongside.
var (
	// ErrCryptoFailure is returned when a primitive cannot be constructed or
	// is misused, e.g. a key of the wrong length passed to Encrypt or a
	// random source that fails to deliver bytes.
	ErrCryptoFailure = errors.New("crypto failure")

	// ErrAuthenticationFailure is returned when ciphertext fails tag
	// verification: tampered bytes, wrong key, wrong nonce or truncated
	// input. No plaintext is ever returned with this error.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidKeyMaterial is returned when imported key bytes have the
	// wrong length or are otherwise malformed.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
