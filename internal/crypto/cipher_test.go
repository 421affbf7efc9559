// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// failingRandom always fails to deliver bytes.
type failingRandom struct{}

func (failingRandom) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func mustKey(t *testing.T, c SymmetricCipher) *FileKey {
	t.Helper()
	key, err := c.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	return key
}

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	c := NewAESGCMCipher(nil)

	k1 := mustKey(t, c)
	k2 := mustKey(t, c)

	if k1.Len() != KeySize {
		t.Fatalf("key length = %d, want %d", k1.Len(), KeySize)
	}
	if bytes.Equal(c.ExportKeyBytes(k1), c.ExportKeyBytes(k2)) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestGenerateKey_RandomFailure(t *testing.T) {
	c := NewAESGCMCipher(failingRandom{})

	_, err := c.GenerateKey()
	if !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure, got %v", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)
	plaintext := []byte("the quick brown fox")

	sealed, err := c.Encrypt(plaintext, key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if len(sealed.Nonce) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(sealed.Nonce), NonceSize)
	}
	if len(sealed.Ciphertext) != len(plaintext)+TagSize {
		t.Fatalf("ciphertext length = %d, want %d", len(sealed.Ciphertext), len(plaintext)+TagSize)
	}

	got, err := c.Decrypt(sealed.Ciphertext, sealed.Nonce, key, nil)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("plaintext mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptDecrypt_EmptyPlaintext(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	sealed, err := c.Encrypt(nil, key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(sealed.Ciphertext) != TagSize {
		t.Fatalf("ciphertext length = %d, want %d", len(sealed.Ciphertext), TagSize)
	}

	got, err := c.Decrypt(sealed.Ciphertext, sealed.Nonce, key, nil)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %d bytes", len(got))
	}
}

func TestEncrypt_WrongKeyLength(t *testing.T) {
	c := NewAESGCMCipher(nil)

	for _, key := range []*FileKey{nil, newFileKey(make([]byte, 16)), newFileKey(make([]byte, 33))} {
		_, err := c.Encrypt([]byte("data"), key, nil)
		if !errors.Is(err, ErrCryptoFailure) {
			t.Fatalf("key len %d: expected ErrCryptoFailure, got %v", key.Len(), err)
		}
	}
}

func TestEncrypt_RandomFailure(t *testing.T) {
	c := NewAESGCMCipher(failingRandom{})
	key := newFileKey(bytes.Repeat([]byte{1}, KeySize))

	_, err := c.Encrypt([]byte("data"), key, nil)
	if !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure, got %v", err)
	}
}

func TestDecrypt_TamperedCiphertextEveryBit(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)
	plaintext := []byte("sixteen byte msg")

	sealed, err := c.Encrypt(plaintext, key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for i := 0; i < len(sealed.Ciphertext)*8; i++ {
		tampered := bytes.Clone(sealed.Ciphertext)
		tampered[i/8] ^= 1 << (i % 8)

		got, err := c.Decrypt(tampered, sealed.Nonce, key, nil)
		if !errors.Is(err, ErrAuthenticationFailure) {
			t.Fatalf("bit %d: expected ErrAuthenticationFailure, got %v", i, err)
		}
		if got != nil {
			t.Fatalf("bit %d: plaintext returned on failure", i)
		}
	}
}

func TestDecrypt_TamperedNonce(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	sealed, err := c.Encrypt([]byte("payload"), key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	nonce := bytes.Clone(sealed.Nonce)
	nonce[0] ^= 0x80

	if _, err := c.Decrypt(sealed.Ciphertext, nonce, key, nil); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)
	other := mustKey(t, c)

	sealed, err := c.Encrypt([]byte("payload"), key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := c.Decrypt(sealed.Ciphertext, sealed.Nonce, other, nil); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
}

func TestDecrypt_BadLengths(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	sealed, err := c.Encrypt([]byte("payload"), key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	tests := []struct {
		name       string
		ciphertext []byte
		nonce      []byte
		key        *FileKey
	}{
		{"short nonce", sealed.Ciphertext, sealed.Nonce[:8], key},
		{"long nonce", sealed.Ciphertext, append(bytes.Clone(sealed.Nonce), 0), key},
		{"short key", sealed.Ciphertext, sealed.Nonce, newFileKey(make([]byte, 16))},
		{"nil key", sealed.Ciphertext, sealed.Nonce, nil},
		{"truncated ciphertext", sealed.Ciphertext[:TagSize-1], sealed.Nonce, key},
		{"missing last byte", sealed.Ciphertext[:len(sealed.Ciphertext)-1], sealed.Nonce, key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decrypt(tt.ciphertext, tt.nonce, tt.key, nil)
			if !errors.Is(err, ErrAuthenticationFailure) {
				t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
			}
			if got != nil {
				t.Fatalf("plaintext returned on failure")
			}
		})
	}
}

func TestDecrypt_AdditionalDataMismatch(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	sealed, err := c.Encrypt([]byte("payload"), key, []byte("report.pdf"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := c.Decrypt(sealed.Ciphertext, sealed.Nonce, key, []byte("invoice.pdf")); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
	if _, err := c.Decrypt(sealed.Ciphertext, sealed.Nonce, key, []byte("report.pdf")); err != nil {
		t.Fatalf("Decrypt with matching additional data: %v", err)
	}
}

func TestEncrypt_NonceUniqueness(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		sealed, err := c.Encrypt([]byte{byte(i)}, key, nil)
		if err != nil {
			t.Fatalf("Encrypt error at %d: %v", i, err)
		}
		if _, dup := seen[string(sealed.Nonce)]; dup {
			t.Fatalf("nonce repeated after %d encryptions", i)
		}
		seen[string(sealed.Nonce)] = struct{}{}
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)
	plaintext := []byte("same input twice")

	s1, err := c.Encrypt(plaintext, key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	s2, err := c.Encrypt(plaintext, key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(s1.Nonce, s2.Nonce) {
		t.Fatalf("expected nonces to differ")
	}
	if bytes.Equal(s1.Ciphertext, s2.Ciphertext) {
		t.Fatalf("expected ciphertexts to differ")
	}
}

func TestImportKeyBytes(t *testing.T) {
	c := NewAESGCMCipher(nil)

	for _, n := range []int{0, 16, 31, 33, 64} {
		if _, err := c.ImportKeyBytes(make([]byte, n)); !errors.Is(err, ErrInvalidKeyMaterial) {
			t.Fatalf("len %d: expected ErrInvalidKeyMaterial, got %v", n, err)
		}
	}

	raw := bytes.Repeat([]byte{0x42}, KeySize)
	key, err := c.ImportKeyBytes(raw)
	if err != nil {
		t.Fatalf("ImportKeyBytes error: %v", err)
	}

	// the key must not alias the caller's slice
	raw[0] = 0
	if c.ExportKeyBytes(key)[0] != 0x42 {
		t.Fatalf("imported key aliases input slice")
	}
}

func TestExportKeyBytes_ReturnsCopy(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	exported := c.ExportKeyBytes(key)
	exported[0] ^= 0xFF

	if bytes.Equal(exported, c.ExportKeyBytes(key)) {
		t.Fatalf("exported bytes alias key material")
	}
}

func TestFileKey_Wipe(t *testing.T) {
	c := NewAESGCMCipher(nil)
	key := mustKey(t, c)

	key.Wipe()
	if key.Len() != 0 {
		t.Fatalf("wiped key length = %d, want 0", key.Len())
	}
	if _, err := c.Encrypt([]byte("x"), key, nil); !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure with wiped key, got %v", err)
	}

	var nilKey *FileKey
	nilKey.Wipe()
}
