package http

import (
	"encoding/json"
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"
)

type PolicyHandler struct {
	policySvc service.PolicyService
}

func NewPolicyHandler(policySvc service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policySvc: policySvc}
}

func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, err)
		return
	}

	policy, err := h.policySvc.GetPolicy(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

type updatePolicyBody struct {
	Enforce             *bool    `json:"enforce,omitempty"`
	DefaultRadiusMeters *int32   `json:"default_radius_meters,omitempty"`
	Roles               []string `json:"roles,omitempty"`
}

func (h *PolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, err)
		return
	}

	var body updatePolicyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	policy, err := h.policySvc.UpdatePolicy(r.Context(), orgID, service.PolicyUpdate{
		Enforce:             body.Enforce,
		DefaultRadiusMeters: body.DefaultRadiusMeters,
		Roles:               body.Roles,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, policy)
}
