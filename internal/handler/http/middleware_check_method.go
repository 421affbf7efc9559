// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. Chi calls
// it when the path matches a route but the method does not; the request is
// answered with 404 so callers cannot probe which methods exist. Preflight
// OPTIONS requests get the list of allowed methods instead.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	methods := []string{
		http.MethodGet, http.MethodPut, http.MethodPost,
		http.MethodDelete, http.MethodPatch, http.MethodHead,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			allowed := ""
			for _, m := range methods {
				if router.Match(chi.NewRouteContext(), m, r.URL.Path) {
					if allowed != "" {
						allowed += ", "
					}
					allowed += m
				}
			}
			if allowed != "" {
				w.Header().Set("Allow", allowed)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
