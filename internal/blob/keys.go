// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-share/internal/utils"
)

const keyPrefix = "files"

var idGenerator = utils.NewUUIDGenerator()

// newObjectKey returns files/{ownerID}/{uuid}.
func newObjectKey(ownerID string) (string, error) {
	if !validSegment(ownerID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOwnerID, ownerID)
	}

	return keyPrefix + "/" + ownerID + "/" + idGenerator.Generate(), nil
}

// validateKey checks that key has the files/{owner}/{object} shape and
// cannot escape the store root.
func validateKey(key string) error {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != keyPrefix || !validSegment(parts[1]) || !validSegment(parts[2]) {
		return fmt.Errorf("%w: bad object key %q", ErrInvalidBlobURL, key)
	}
	return nil
}

func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}

// keyFromURL strips scheme:// from rawURL and validates the remaining key.
func keyFromURL(rawURL, scheme string) (string, error) {
	key, ok := strings.CutPrefix(rawURL, scheme+"://")
	if !ok {
		return "", fmt.Errorf("%w: expected %s:// url, got %q", ErrInvalidBlobURL, scheme, rawURL)
	}
	if err := validateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// ObjectKey joins ownerID and objectID into files/{ownerID}/{objectID}.
func ObjectKey(ownerID, objectID string) (string, error) {
	key := keyPrefix + "/" + ownerID + "/" + objectID
	if err := validateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// SplitKey is the inverse of ObjectKey.
func SplitKey(key string) (ownerID, objectID string, err error) {
	if err = validateKey(key); err != nil {
		return "", "", err
	}
	parts := strings.Split(key, "/")
	return parts[1], parts[2], nil
}
