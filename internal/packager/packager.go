// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/models"
)

// ErrUnsupportedFormat is returned by Open for bundles whose FormatVersion
// this build does not know how to authenticate.
var ErrUnsupportedFormat = errors.New("unsupported bundle format")

// v2 additional data prefix, followed by length-prefixed name and MIME type.
const aadDomain = "go-safe-share/file/v2"

type filePackager struct {
	cipher crypto.SymmetricCipher
	format int
}

// Option customises a packager.
type Option func(*filePackager)

// WithFormat selects the format new bundles are sealed with. Only
// models.BundleFormatV1 and models.BundleFormatV2 are accepted; anything
// else is ignored.
func WithFormat(format int) Option {
	return func(p *filePackager) {
		if format == models.BundleFormatV1 || format == models.BundleFormatV2 {
			p.format = format
		}
	}
}

// NewFilePackager builds a [FilePackager] over the cipher of cc.
// New bundles use models.BundleFormatV2 unless overridden.
func NewFilePackager(cc crypto.CryptoContext, opts ...Option) FilePackager {
	cipher := cc.Cipher()
	if cipher == nil {
		cipher = crypto.NewCryptoContext().Cipher()
	}

	p := &filePackager{cipher: cipher, format: models.BundleFormatV2}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *filePackager) Seal(plaintext []byte, fileName, mimeType string) (models.EncryptedBundle, error) {
	key, err := p.cipher.GenerateKey()
	if err != nil {
		return models.EncryptedBundle{}, fmt.Errorf("seal %q: %w", fileName, err)
	}
	defer key.Wipe()

	sealed, err := p.cipher.Encrypt(plaintext, key, additionalData(p.format, fileName, mimeType))
	if err != nil {
		return models.EncryptedBundle{}, fmt.Errorf("seal %q: %w", fileName, err)
	}

	return models.EncryptedBundle{
		Ciphertext:     sealed.Ciphertext,
		Nonce:          sealed.Nonce,
		RawKey:         p.cipher.ExportKeyBytes(key),
		FileName:       fileName,
		MimeType:       mimeType,
		PlaintextSize:  int64(len(plaintext)),
		CiphertextSize: int64(len(sealed.Ciphertext)),
		FormatVersion:  p.format,
	}, nil
}

func (p *filePackager) Open(bundle models.EncryptedBundle) (models.OpenedFile, error) {
	if bundle.FormatVersion != models.BundleFormatV1 && bundle.FormatVersion != models.BundleFormatV2 {
		return models.OpenedFile{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, bundle.FormatVersion)
	}

	key, err := p.cipher.ImportKeyBytes(bundle.RawKey)
	if err != nil {
		return models.OpenedFile{}, fmt.Errorf("open %q: %w", bundle.FileName, err)
	}
	defer key.Wipe()

	plaintext, err := p.cipher.Decrypt(
		bundle.Ciphertext,
		bundle.Nonce,
		key,
		additionalData(bundle.FormatVersion, bundle.FileName, bundle.MimeType),
	)
	if err != nil {
		return models.OpenedFile{}, fmt.Errorf("open %q: %w", bundle.FileName, err)
	}

	return models.OpenedFile{
		Plaintext: plaintext,
		FileName:  bundle.FileName,
		MimeType:  bundle.MimeType,
	}, nil
}

// additionalData returns the AEAD additional data for format. Version 1
// authenticates nothing besides the ciphertext.
func additionalData(format int, fileName, mimeType string) []byte {
	if format != models.BundleFormatV2 {
		return nil
	}

	buf := make([]byte, 0, len(aadDomain)+8+len(fileName)+len(mimeType))
	buf = append(buf, aadDomain...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(fileName)))
	buf = append(buf, fileName...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(mimeType)))
	buf = append(buf, mimeType...)

	return buf
}
