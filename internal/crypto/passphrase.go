// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the Argon2id salt in bytes.
const SaltSize = 16

// passphraseWrapAAD domain-separates wrapped keys from file ciphertext.
var passphraseWrapAAD = []byte("go-safe-share/key-wrap/v1")

// Argon2Params tunes the Argon2id key derivation.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params follows the OWASP recommendation: 1 pass, 64 MiB,
// 4 lanes.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// PassphraseKeyWrapper wraps file keys with a key-encryption key derived
// from a passphrase. The wrapped form is nonce || ciphertext.
type PassphraseKeyWrapper struct {
	kek    *FileKey
	cipher SymmetricCipher
}

// GenerateSalt returns SaltSize random bytes from random. The salt is not
// secret and is stored next to the wrapped keys.
func GenerateSalt(random RandomSource) ([]byte, error) {
	if random == nil {
		random = NewSystemRandom()
	}
	return randomBytes(random, SaltSize)
}

// NewPassphraseKeyWrapper derives the KEK from passphrase and salt with
// Argon2id. The same inputs always derive the same KEK.
func NewPassphraseKeyWrapper(passphrase string, salt []byte, params Argon2Params, cc CryptoContext) (*PassphraseKeyWrapper, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidKeyMaterial)
	}
	if len(salt) < SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want at least %d", ErrInvalidKeyMaterial, len(salt), SaltSize)
	}

	kek := argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, KeySize)

	cipher := cc.Cipher()
	if cipher == nil {
		cipher = NewAESGCMCipher(nil)
	}

	return &PassphraseKeyWrapper{kek: newFileKey(kek), cipher: cipher}, nil
}

// Wrap implements [KeyWrapper].
func (w *PassphraseKeyWrapper) Wrap(rawKey []byte) ([]byte, error) {
	if len(rawKey) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyMaterial, len(rawKey), KeySize)
	}

	sealed, err := w.cipher.Encrypt(rawKey, w.kek, passphraseWrapAAD)
	if err != nil {
		return nil, fmt.Errorf("wrap key: %w", err)
	}

	return append(sealed.Nonce, sealed.Ciphertext...), nil
}

// Unwrap implements [KeyWrapper]. A wrong passphrase surfaces as
// ErrAuthenticationFailure.
func (w *PassphraseKeyWrapper) Unwrap(wrapped []byte) ([]byte, error) {
	if len(wrapped) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: wrapped key too short", ErrAuthenticationFailure)
	}

	nonce, ciphertext := wrapped[:NonceSize], wrapped[NonceSize:]
	rawKey, err := w.cipher.Decrypt(ciphertext, nonce, w.kek, passphraseWrapAAD)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	if len(rawKey) != KeySize {
		return nil, fmt.Errorf("%w: unwrapped key is %d bytes", ErrInvalidKeyMaterial, len(rawKey))
	}

	return rawKey, nil
}

// Close wipes the derived KEK.
func (w *PassphraseKeyWrapper) Close() {
	w.kek.Wipe()
}
