// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cryptography of go-safe-share:
// random sources, per-file AES-256-GCM keys, authenticated encryption of file
// bytes and optional asymmetric wrapping of file keys.
//
// Nothing in this package performs I/O beyond reading the random source and,
// for identity management, the key files passed in explicitly.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Sealed is the output of a single [SymmetricCipher.Encrypt] call.
//
// Ciphertext has the 16-byte GCM tag appended: len(Ciphertext) equals
// len(plaintext)+TagSize.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
}

// SymmetricCipher generates per-file keys and performs authenticated
// encryption over whole byte buffers.
type SymmetricCipher interface {
	// GenerateKey returns a fresh, uniformly random 256-bit key.
	GenerateKey() (*FileKey, error)

	// Encrypt seals plaintext under key with a fresh random 96-bit nonce.
	// additionalData is authenticated but not encrypted and may be nil.
	// Fails with ErrCryptoFailure if the key is malformed or the random
	// source fails.
	Encrypt(plaintext []byte, key *FileKey, additionalData []byte) (Sealed, error)

	// Decrypt verifies the tag and returns the plaintext. Any verification
	// problem, including wrong key or nonce length, yields
	// ErrAuthenticationFailure and no plaintext.
	Decrypt(ciphertext, nonce []byte, key *FileKey, additionalData []byte) ([]byte, error)

	// ExportKeyBytes returns a copy of the raw key material.
	ExportKeyBytes(key *FileKey) []byte

	// ImportKeyBytes builds a key from raw bytes. Fails with
	// ErrInvalidKeyMaterial unless len(raw) == KeySize.
	ImportKeyBytes(raw []byte) (*FileKey, error)
}

type aesGCMCipher struct {
	random RandomSource
}

// NewAESGCMCipher returns an AES-256-GCM [SymmetricCipher] drawing keys and
// nonces from random. A nil random falls back to [NewSystemRandom].
func NewAESGCMCipher(random RandomSource) SymmetricCipher {
	if random == nil {
		random = NewSystemRandom()
	}
	return &aesGCMCipher{random: random}
}

func (c *aesGCMCipher) GenerateKey() (*FileKey, error) {
	material, err := randomBytes(c.random, KeySize)
	if err != nil {
		return nil, fmt.Errorf("generate file key: %w", err)
	}
	return newFileKey(material), nil
}

func (c *aesGCMCipher) Encrypt(plaintext []byte, key *FileKey, additionalData []byte) (Sealed, error) {
	if key.Len() != KeySize {
		return Sealed{}, fmt.Errorf("%w: encrypt with %d-byte key", ErrCryptoFailure, key.Len())
	}

	gcm, err := newGCM(key.bytes())
	if err != nil {
		return Sealed{}, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	nonce, err := randomBytes(c.random, gcm.NonceSize())
	if err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	return Sealed{
		Ciphertext: gcm.Seal(nil, nonce, plaintext, additionalData),
		Nonce:      nonce,
	}, nil
}

func (c *aesGCMCipher) Decrypt(ciphertext, nonce []byte, key *FileKey, additionalData []byte) ([]byte, error) {
	if key.Len() != KeySize {
		return nil, fmt.Errorf("%w: decrypt with %d-byte key", ErrAuthenticationFailure, key.Len())
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrAuthenticationFailure, len(nonce), NonceSize)
	}
	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrAuthenticationFailure)
	}

	gcm, err := newGCM(key.bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	return plaintext, nil
}

func (c *aesGCMCipher) ExportKeyBytes(key *FileKey) []byte {
	out := make([]byte, key.Len())
	copy(out, key.bytes())
	return out
}

func (c *aesGCMCipher) ImportKeyBytes(raw []byte) (*FileKey, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyMaterial, len(raw), KeySize)
	}

	material := make([]byte, KeySize)
	copy(material, raw)
	return newFileKey(material), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
