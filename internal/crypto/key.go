// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

const (
	// KeySize is the length of a file key in bytes (AES-256).
	KeySize = 32
	// NonceSize is the length of a GCM nonce in bytes (96 bits).
	NonceSize = 12
	// TagSize is the length of the GCM authentication tag in bytes.
	TagSize = 16
)

// FileKey is a 256-bit symmetric key generated fresh for a single file.
//
// A FileKey lives only for the duration of one seal or open operation.
// Wipe zeroes the key material once the operation is done.
type FileKey struct {
	material []byte
}

func newFileKey(material []byte) *FileKey {
	return &FileKey{material: material}
}

// Len returns the key length in bytes, 0 for a nil or wiped key.
func (k *FileKey) Len() int {
	if k == nil {
		return 0
	}
	return len(k.material)
}

// Wipe overwrites the key material with zeros. The key is unusable afterwards.
func (k *FileKey) Wipe() {
	if k == nil {
		return
	}
	clear(k.material)
	k.material = nil
}

func (k *FileKey) bytes() []byte {
	if k == nil {
		return nil
	}
	return k.material
}
