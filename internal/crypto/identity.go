// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filippo.io/age"
)

// DefaultScryptWorkFactor is the scrypt log2(N) used to protect identity
// files. age's own default.
const DefaultScryptWorkFactor = 18

// ErrIdentityExists is returned by [GenerateIdentity] when a key file is
// already present at the target path.
var ErrIdentityExists = errors.New("identity already exists")

// IdentityFiles locates a user key pair on disk: the recipient (public key)
// in plaintext and the identity (private key) encrypted with a passphrase.
type IdentityFiles struct {
	PublicKeyPath  string
	PrivateKeyPath string

	// WorkFactor overrides DefaultScryptWorkFactor when non-zero.
	WorkFactor int
}

// Generate creates a fresh X25519 key pair and writes it to disk. The
// private key is age-encrypted to passphrase. Existing files are never
// overwritten, and a failed Generate leaves neither file behind.
func (f IdentityFiles) Generate(passphrase string) (*age.X25519Recipient, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidKeyMaterial)
	}
	for _, p := range []string{f.PublicKeyPath, f.PrivateKeyPath} {
		if _, err := os.Stat(p); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrIdentityExists, p)
		}
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("%w: generating key pair: %w", ErrCryptoFailure, err)
	}

	sealed, err := f.sealIdentity(identity, passphrase)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(f.PublicKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating public key directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.PrivateKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating private key directory: %w", err)
	}

	if err := writeNewFile(f.PrivateKeyPath, sealed, 0o600); err != nil {
		return nil, fmt.Errorf("writing private key: %w", err)
	}
	if err := writeNewFile(f.PublicKeyPath, []byte(identity.Recipient().String()+"\n"), 0o644); err != nil {
		_ = os.Remove(f.PrivateKeyPath)
		return nil, fmt.Errorf("writing public key: %w", err)
	}

	return identity.Recipient(), nil
}

// sealIdentity encrypts the identity to an scrypt recipient.
func (f IdentityFiles) sealIdentity(identity *age.X25519Identity, passphrase string) ([]byte, error) {
	scrypt, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: creating scrypt recipient: %w", ErrCryptoFailure, err)
	}
	workFactor := f.WorkFactor
	if workFactor == 0 {
		workFactor = DefaultScryptWorkFactor
	}
	scrypt.SetWorkFactor(workFactor)

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, scrypt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating encrypted writer: %w", ErrCryptoFailure, err)
	}
	if _, err := io.WriteString(w, identity.String()+"\n"); err != nil {
		return nil, fmt.Errorf("%w: writing encrypted private key: %w", ErrCryptoFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalizing encrypted private key: %w", ErrCryptoFailure, err)
	}

	return buf.Bytes(), nil
}

// writeNewFile creates path exclusively; a partial write removes the file.
func writeNewFile(path string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

// Recipient reads and parses the public key file.
func (f IdentityFiles) Recipient() (age.Recipient, error) {
	data, err := os.ReadFile(f.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}

	recipients, err := age.ParseRecipients(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing public key: %w", ErrInvalidKeyMaterial, err)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients in public key file", ErrInvalidKeyMaterial)
	}

	return recipients[0], nil
}

// Unlock decrypts the private key file with passphrase. A wrong passphrase
// yields ErrAuthenticationFailure.
func (f IdentityFiles) Unlock(passphrase string) (age.Identity, error) {
	data, err := os.ReadFile(f.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}

	scrypt, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: creating scrypt identity: %w", ErrCryptoFailure, err)
	}

	dec, err := age.Decrypt(bytes.NewReader(data), scrypt)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypting private key: %w", ErrAuthenticationFailure, err)
	}

	keyData, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: reading private key: %w", ErrAuthenticationFailure, err)
	}

	identities, err := age.ParseIdentities(bytes.NewReader(keyData))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing private key: %w", ErrInvalidKeyMaterial, err)
	}
	if len(identities) == 0 {
		return nil, fmt.Errorf("%w: no identities in private key file", ErrInvalidKeyMaterial)
	}

	return identities[0], nil
}

// Wrapper unlocks the identity and returns a wrapper able to both wrap and
// unwrap.
func (f IdentityFiles) Wrapper(passphrase string) (*AgeKeyWrapper, error) {
	recipient, err := f.Recipient()
	if err != nil {
		return nil, err
	}

	identity, err := f.Unlock(passphrase)
	if err != nil {
		return nil, err
	}

	return NewAgeKeyWrapper(recipient, identity), nil
}
