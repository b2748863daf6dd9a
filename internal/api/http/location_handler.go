package http

import (
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"
)

// AllowedLocationHandler serves direct operator actions on zones.
type AllowedLocationHandler struct {
	locSvc service.AllowedLocationService
}

func NewAllowedLocationHandler(locSvc service.AllowedLocationService) *AllowedLocationHandler {
	return &AllowedLocationHandler{locSvc: locSvc}
}

func (h *AllowedLocationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, err)
		return
	}

	locs, err := h.locSvc.ListLocations(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	if locs == nil {
		locs = []domain.AllowedLocation{}
	}
	writeJSON(w, http.StatusOK, locs)
}

func (h *AllowedLocationHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.locSvc.RevokeLocation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AllowedLocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.locSvc.DeleteLocation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
