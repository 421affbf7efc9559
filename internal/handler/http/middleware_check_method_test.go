// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/api/items", ok)
	router.Put("/api/items", ok)
	router.Route("/api/blobs", func(r chi.Router) {
		r.Get("/{owner}/{object}", ok)
		r.Delete("/{owner}/{object}", ok)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"registered method passes", http.MethodGet, "/api/items", http.StatusOK, ""},
		{"unregistered method is 404", http.MethodPost, "/api/items", http.StatusNotFound, ""},
		{"unregistered method on subrouter", http.MethodPut, "/api/blobs/a/b", http.StatusNotFound, ""},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
		{"options lists methods", http.MethodOptions, "/api/items", http.StatusNoContent, "GET, PUT"},
		{"options on subrouter", http.MethodOptions, "/api/blobs/a/b", http.StatusNoContent, "GET, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
