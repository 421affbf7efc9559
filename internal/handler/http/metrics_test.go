package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RoutePatternLabels(t *testing.T) {
	router, _ := newTestRouter(t)
	auth := bearer(t, "alice")

	rec := serve(router, http.MethodPut, BlobsPath, auth, []byte("ciphertext"))
	require.Equal(t, http.StatusCreated, rec.Code)
	serve(router, http.MethodGet, decodePut(t, rec).URL, auth, nil)

	body := serve(router, http.MethodGet, "/metrics", "", nil).Body.String()

	assert.Contains(t, body, `blob_server_requests_total{code="201",method="PUT",route="/api/blobs`)
	assert.Contains(t, body, `blob_server_requests_total{code="200",method="GET",route="/api/blobs/{owner}/{object}"} 1`)
	assert.Contains(t, body, "blob_server_response_time_bucket")
	assert.Contains(t, body, "go_goroutines")
	assert.False(t, strings.Contains(body, "alice"), "owner ids must not leak into labels")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewMetrics()
		_ = NewMetrics()
	})
}
