package blob

import (
	"errors"
	"fmt"
)

var (
	ErrBlobUnavailable = errors.New("blob unavailable")
	// ErrBlobNotFound matches ErrBlobUnavailable as well, so download
	// callers only need to check one sentinel.
	ErrBlobNotFound     = fmt.Errorf("blob not found: %w", ErrBlobUnavailable)
	ErrInvalidBlobURL   = errors.New("invalid blob url")
	ErrInvalidOwnerID   = errors.New("invalid owner id")
	ErrUnsupportedStore = errors.New("unsupported blob backend")
)
