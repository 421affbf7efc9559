// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// CryptoContext bundles the crypto collaborators a packager needs.
// It is an immutable value created once and passed in at construction
// time; there is no package-level crypto state.
type CryptoContext struct {
	random RandomSource
	cipher SymmetricCipher
}

// ContextOption customises a [CryptoContext].
type ContextOption func(*CryptoContext)

// WithRandomSource replaces the OS CSPRNG. Used by tests that need to
// observe or break randomness.
func WithRandomSource(random RandomSource) ContextOption {
	return func(c *CryptoContext) {
		c.random = random
	}
}

// WithCipher replaces the default AES-256-GCM cipher.
func WithCipher(cipher SymmetricCipher) ContextOption {
	return func(c *CryptoContext) {
		c.cipher = cipher
	}
}

// NewCryptoContext builds a context with the system random source and an
// AES-256-GCM cipher over it, then applies opts.
func NewCryptoContext(opts ...ContextOption) CryptoContext {
	cc := CryptoContext{}
	for _, opt := range opts {
		opt(&cc)
	}

	if cc.random == nil {
		cc.random = NewSystemRandom()
	}
	if cc.cipher == nil {
		cc.cipher = NewAESGCMCipher(cc.random)
	}

	return cc
}

// Random returns the context's random source.
func (c CryptoContext) Random() RandomSource {
	return c.random
}

// Cipher returns the context's symmetric cipher.
func (c CryptoContext) Cipher() SymmetricCipher {
	return c.cipher
}
