package http

import (
	"net/http"
)

// limitBody caps the request body at maxBlobSize. Declared oversized bodies
// are refused before any byte is read; the rest fail with
// *http.MaxBytesError while the handler reads them.
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBlobSize > 0 {
			if r.ContentLength > h.maxBlobSize {
				h.writeError(w, r, &http.MaxBytesError{Limit: h.maxBlobSize})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBlobSize)
		}
		next.ServeHTTP(w, r)
	})
}
