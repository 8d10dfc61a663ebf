package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-fedi-wallet/internal/store"
	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

const defaultActivityLimit = 20

func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > store.MaxListLimit {
			h.writeError(w, r, ErrInvalidLimit, "*Handler.listActivity")
			return
		}
		limit = parsed
	}

	operations, err := h.services.ActivityService.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listActivity")
		return
	}
	if operations == nil {
		operations = []models.Operation{}
	}

	utils.WriteJSON(w, operations, http.StatusOK)
}
