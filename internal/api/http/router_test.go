package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/security"
	"geoaccess-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret-1234"

type mockRequestSvc struct{ mock.Mock }

func (m *mockRequestSvc) CreateRequest(ctx context.Context, in service.CreateLocationRequestInput) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *mockRequestSvc) GetRequest(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *mockRequestSvc) ListRequests(ctx context.Context, orgID int32, status string) ([]domain.LocationAccessRequest, error) {
	args := m.Called(ctx, orgID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationAccessRequest), args.Error(1)
}
func (m *mockRequestSvc) DeleteRequest(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWorkflowSvc struct{ mock.Mock }

func (m *mockWorkflowSvc) Review(ctx context.Context, id int32, action, comments string) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id, action, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *mockWorkflowSvc) StopAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *mockWorkflowSvc) StartAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}

type mockEvaluatorSvc struct{ mock.Mock }

func (m *mockEvaluatorSvc) Evaluate(ctx context.Context, orgID int32, role string, lat, lon float64) (domain.Decision, error) {
	args := m.Called(ctx, orgID, role, lat, lon)
	return args.Get(0).(domain.Decision), args.Error(1)
}

type testEnv struct {
	router      http.Handler
	tokens      security.TokenManager
	requestSvc  *mockRequestSvc
	workflowSvc *mockWorkflowSvc
	evalSvc     *mockEvaluatorSvc
}

func newTestEnv() *testEnv {
	tokens := security.NewTokenManager(testSecret)
	requestSvc := new(mockRequestSvc)
	workflowSvc := new(mockWorkflowSvc)
	evalSvc := new(mockEvaluatorSvc)

	router := NewRouter(Handlers{
		Requests:  NewLocationRequestHandler(requestSvc),
		Review:    NewReviewHandler(workflowSvc),
		Locations: NewAllowedLocationHandler(nil),
		Policy:    NewPolicyHandler(nil),
		Evaluate:  NewEvaluateHandler(evalSvc),
		Summary:   NewSummaryHandler(nil),
	}, tokens)

	return &testEnv{router: router, tokens: tokens, requestSvc: requestSvc, workflowSvc: workflowSvc, evalSvc: evalSvc}
}

func (e *testEnv) do(t *testing.T, method, path, role string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if role != "" {
		token, err := e.tokens.GenerateToken(1, role, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AuthRequired(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/v1/orgs/1/location-requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ReviewRequiresSuperAdmin(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/location-requests/1/review", domain.RoleAdmin,
		map[string]string{"action": "approve"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ReviewApprove(t *testing.T) {
	env := newTestEnv()

	approved := &domain.LocationAccessRequest{ID: 1, Status: domain.RequestStatusApproved}
	env.workflowSvc.On("Review", mock.Anything, int32(1), "approve", "").Return(approved, nil).Once()

	rec := env.do(t, http.MethodPost, "/api/v1/location-requests/1/review", domain.RoleSuperAdmin,
		map[string]string{"action": "approve"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.LocationAccessRequest
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, domain.RequestStatusApproved, got.Status)
	env.workflowSvc.AssertExpectations(t)
}

func TestRouter_InvalidStateMapsToConflict(t *testing.T) {
	env := newTestEnv()

	stateErr := domain.NewInvalidStateError(1, domain.RequestStatusApproved, "approve")
	env.workflowSvc.On("Review", mock.Anything, int32(1), "approve", "").Return(nil, stateErr).Once()

	rec := env.do(t, http.MethodPost, "/api/v1/location-requests/1/review", domain.RoleSuperAdmin,
		map[string]string{"action": "approve"})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		CurrentStatus string `json:"current_status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "APPROVED", resp.CurrentStatus)
}

func TestRouter_ValidationMapsToBadRequest(t *testing.T) {
	env := newTestEnv()

	env.requestSvc.On("CreateRequest", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("coordinates", "out of range")).Once()

	rec := env.do(t, http.MethodPost, "/api/v1/orgs/1/location-requests", domain.RoleAdmin,
		map[string]any{"latitude": 91.0, "longitude": 0.0, "request_type": "PERMANENT"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_NotFoundMapsTo404(t *testing.T) {
	env := newTestEnv()

	env.requestSvc.On("GetRequest", mock.Anything, int32(42)).Return(nil, domain.ErrNotFound).Once()

	rec := env.do(t, http.MethodGet, "/api/v1/location-requests/42", domain.RoleAdmin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_EvaluateReturnsDecision(t *testing.T) {
	env := newTestEnv()

	env.evalSvc.On("Evaluate", mock.Anything, int32(1), "AGENT", 12.9005, 77.6005).
		Return(domain.Deny(domain.ReasonOutsideAllowedRadius), nil).Once()

	rec := env.do(t, http.MethodPost, "/api/v1/evaluate", domain.RoleAgent, map[string]any{
		"organization_id": 1,
		"role":            "AGENT",
		"latitude":        12.9005,
		"longitude":       77.6005,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var decision domain.Decision
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&decision))
	assert.False(t, decision.Allow)
	assert.Equal(t, domain.ReasonOutsideAllowedRadius, decision.Reason)
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	env := newTestEnv()

	env.requestSvc.On("ListRequests", mock.Anything, int32(1), "").
		Return([]domain.LocationAccessRequest{}, nil).Once()

	rec := env.do(t, http.MethodGet, "/api/v1/orgs/1/location-requests", domain.RoleAdmin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
