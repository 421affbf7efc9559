// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/go-chi/chi/v5"
)

// putBlob stores the request body for the owner named by the "owner" query
// parameter, which defaults to the token subject.
func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(r.Context())
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = userID
	}
	if owner != userID {
		h.writeError(w, r, ErrOwnerMismatch)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(data) == 0 {
		h.writeError(w, r, ErrEmptyBody)
		return
	}

	objectID, err := h.services.BlobService.Put(r.Context(), owner, data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("object_id", objectID).Int("size", len(data)).Msg("blob stored")
	_, _ = utils.WriteJSON(w, models.BlobPutResponse{
		URL:  BlobsPath + "/" + owner + "/" + objectID,
		Size: int64(len(data)),
	}, http.StatusCreated)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	owner, objectID, ok := h.ownedObject(w, r)
	if !ok {
		return
	}

	data, err := h.services.BlobService.Get(r.Context(), owner, objectID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	owner, objectID, ok := h.ownedObject(w, r)
	if !ok {
		return
	}

	if err := h.services.BlobService.Delete(r.Context(), owner, objectID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("object_id", objectID).Msg("blob deleted")
	w.WriteHeader(http.StatusNoContent)
}

// ownedObject reads the {owner} and {object} URL parameters and rejects
// requests for another user's blobs.
func (h *Handler) ownedObject(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	owner := chi.URLParam(r, "owner")
	userID, _ := utils.GetUserIDFromContext(r.Context())
	if owner != userID {
		h.writeError(w, r, ErrOwnerMismatch)
		return "", "", false
	}
	return owner, chi.URLParam(r, "object"), true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}
