package http

import (
	"net/http"

	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.BuildInfo()

	utils.WriteJSON(w, models.BuildInfoResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
