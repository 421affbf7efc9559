// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/go-resty/resty/v2"
)

// BlobsPath is the route prefix served by the blob server.
const BlobsPath = "/api/blobs"

type httpBlobAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlobAdapter constructs an HTTP/REST implementation of
// [BlobServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBlobAdapter(adapterCfg config.Adapter, token string, logger *logger.Logger) (BlobServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	a := &httpBlobAdapter{client: client, baseURL: baseURL, logger: logger}
	a.SetToken(token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BlobServerAdapter].
func (h *httpBlobAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BlobServerAdapter].
func (h *httpBlobAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// PutBlob implements [BlobServerAdapter]. It sends the ciphertext as an
// application/octet-stream body to PUT /api/blobs?owner=<ownerID>. The
// server answers with a path relative to its root, which is resolved
// against the base URL.
func (h *httpBlobAdapter) PutBlob(ctx context.Context, ownerID string, data []byte) (models.BlobPutResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("owner", ownerID).
		SetBody(data).
		Put(BlobsPath)
	if err != nil {
		return models.BlobPutResponse{}, fmt.Errorf("%w: put blob request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlobPutResponse{}, err
	}

	var put models.BlobPutResponse
	if err = json.Unmarshal(resp.Body(), &put); err != nil {
		return models.BlobPutResponse{}, fmt.Errorf("decode put blob response: %w", err)
	}
	if !strings.HasPrefix(put.URL, BlobsPath+"/") {
		return models.BlobPutResponse{}, fmt.Errorf("%w: unexpected blob location %q", ErrBadGateway, put.URL)
	}

	put.URL = h.baseURL + put.URL
	return put, nil
}

// GetBlob implements [BlobServerAdapter].
func (h *httpBlobAdapter) GetBlob(ctx context.Context, rawURL string) ([]byte, error) {
	path, err := h.relativePath(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: get blob request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// DeleteBlob implements [BlobServerAdapter].
func (h *httpBlobAdapter) DeleteBlob(ctx context.Context, rawURL string) error {
	path, err := h.relativePath(rawURL)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("%w: delete blob request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Version implements [BlobServerAdapter]. The endpoint is public, so no
// token is attached.
func (h *httpBlobAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// relativePath checks that rawURL points at this server's blob routes and
// strips the base URL. The token is never sent to another host.
func (h *httpBlobAdapter) relativePath(rawURL string) (string, error) {
	path, ok := strings.CutPrefix(rawURL, h.baseURL)
	if !ok || !strings.HasPrefix(path, BlobsPath+"/") {
		return "", fmt.Errorf("%w: %q", ErrForeignURL, rawURL)
	}
	if strings.Contains(path, "..") || strings.ContainsAny(path, "?#") {
		return "", fmt.Errorf("%w: %q", ErrForeignURL, rawURL)
	}

	return path, nil
}

func (h *httpBlobAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
