// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies cryptographically secure random bytes for keys,
// nonces and salts. It has the shape of [io.Reader] so any CSPRNG reader
// can be plugged in.
type RandomSource interface {
	Read(p []byte) (n int, err error)
}

type systemRandom struct{}

// NewSystemRandom returns a [RandomSource] backed by the operating system
// CSPRNG ([crypto/rand.Reader]).
func NewSystemRandom() RandomSource {
	return systemRandom{}
}

func (systemRandom) Read(p []byte) (int, error) {
	return rand.Reader.Read(p)
}

// randomBytes reads exactly n bytes from src.
func randomBytes(src RandomSource, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, fmt.Errorf("%w: read random bytes: %w", ErrCryptoFailure, err)
	}
	return b, nil
}
