package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-safe-share/internal/app"
	"github.com/MKhiriev/go-safe-share/internal/blob"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order. ErrBlobNotFound wraps
// ErrBlobUnavailable, so it must come first.
var errorStatuses = []errorStatus{
	{blob.ErrBlobNotFound, http.StatusNotFound, app.MsgBlobNotFound},
	{blob.ErrInvalidBlobURL, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{blob.ErrInvalidOwnerID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrOwnerMismatch, http.StatusForbidden, app.MsgAccessDenied},
	{blob.ErrBlobUnavailable, http.StatusBadGateway, app.MsgNetworkError},
}

func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, app.MsgBlobTooLarge
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
