package http

import (
	"net/http"

	"geoaccess-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Requests  *LocationRequestHandler
	Review    *ReviewHandler
	Locations *AllowedLocationHandler
	Policy    *PolicyHandler
	Evaluate  *EvaluateHandler
	Summary   *SummaryHandler
}

// NewRouter mounts the API under /api/v1. All routes require a bearer token;
// review and summary routes additionally require the SUPERADMIN role.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	// Request lifecycle (org admin)
	api.HandleFunc("/orgs/{orgID}/location-requests", h.Requests.Create).Methods(http.MethodPost)
	api.HandleFunc("/orgs/{orgID}/location-requests", h.Requests.List).Methods(http.MethodGet)
	api.HandleFunc("/location-requests/{id}", h.Requests.Get).Methods(http.MethodGet)
	api.HandleFunc("/location-requests/{id}", h.Requests.Delete).Methods(http.MethodDelete)

	// Review actions (superadmin)
	api.HandleFunc("/location-requests/{id}/review", RequireSuperAdmin(h.Review.Review)).Methods(http.MethodPost)
	api.HandleFunc("/location-requests/{id}/stop", RequireSuperAdmin(h.Review.Stop)).Methods(http.MethodPost)
	api.HandleFunc("/location-requests/{id}/start", RequireSuperAdmin(h.Review.Start)).Methods(http.MethodPost)

	// Allowed locations
	api.HandleFunc("/orgs/{orgID}/allowed-locations", h.Locations.List).Methods(http.MethodGet)
	api.HandleFunc("/allowed-locations/{id}/revoke", h.Locations.Revoke).Methods(http.MethodPost)
	api.HandleFunc("/allowed-locations/{id}", h.Locations.Delete).Methods(http.MethodDelete)

	// Policy
	api.HandleFunc("/orgs/{orgID}/location-policy", h.Policy.Get).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{orgID}/location-policy", h.Policy.Update).Methods(http.MethodPut)

	// Authentication-time decision
	api.HandleFunc("/evaluate", h.Evaluate.Evaluate).Methods(http.MethodPost)

	// Cross-org rollup (superadmin)
	api.HandleFunc("/location-summary", RequireSuperAdmin(h.Summary.Summarize)).Methods(http.MethodGet)

	return r
}
