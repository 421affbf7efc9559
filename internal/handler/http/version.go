package http

import (
	"net/http"

	"github.com/MKhiriev/go-safe-share/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
