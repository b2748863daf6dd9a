package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"

	"github.com/gorilla/mux"
)

// LocationRequestHandler serves the request CRUD surface used by org admins.
type LocationRequestHandler struct {
	reqSvc service.LocationRequestService
}

func NewLocationRequestHandler(reqSvc service.LocationRequestService) *LocationRequestHandler {
	return &LocationRequestHandler{reqSvc: reqSvc}
}

type createRequestBody struct {
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int32   `json:"radius_meters"`
	RequestType  string  `json:"request_type"`
	ValidFrom    *string `json:"valid_from,omitempty"`
	ValidTo      *string `json:"valid_to,omitempty"`
	Emergency    bool    `json:"emergency"`
}

func (h *LocationRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, err)
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	req, err := h.reqSvc.CreateRequest(r.Context(), service.CreateLocationRequestInput{
		OrgID:        orgID,
		Address:      body.Address,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		RadiusMeters: body.RadiusMeters,
		RequestType:  domain.RequestType(body.RequestType),
		ValidFrom:    body.ValidFrom,
		ValidTo:      body.ValidTo,
		Emergency:    body.Emergency,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *LocationRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, err)
		return
	}

	reqs, err := h.reqSvc.ListRequests(r.Context(), orgID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.LocationAccessRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *LocationRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.reqSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *LocationRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.reqSvc.DeleteRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return int32(id), nil
}
