// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the reference
// blob server.
//
// [BlobServerAdapter] decouples the blob package from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPBlobAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without inspecting status
// codes (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-safe-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_adapter_mock.go -package=mock

// BlobServerAdapter defines communication with the blob server.
// Implementations attach the bearer token to every request and map
// transport errors to the sentinels of this package.
type BlobServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// PutBlob uploads ciphertext on behalf of ownerID. The returned
	// response carries an absolute URL for later GetBlob and DeleteBlob
	// calls.
	PutBlob(ctx context.Context, ownerID string, data []byte) (models.BlobPutResponse, error)

	// GetBlob downloads the blob at url. url must have been produced by
	// PutBlob against the same server; anything else yields
	// [ErrForeignURL] without a request being sent.
	GetBlob(ctx context.Context, url string) ([]byte, error)

	// DeleteBlob removes the blob at url.
	DeleteBlob(ctx context.Context, url string) error

	// Version reports the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
