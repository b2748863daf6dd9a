package service

import (
	"context"

	"geoaccess-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLocationRequestRepo
type MockLocationRequestRepo struct {
	mock.Mock
}

func (m *MockLocationRequestRepo) Create(ctx context.Context, req *domain.LocationAccessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockLocationRequestRepo) GetByID(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *MockLocationRequestRepo) ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.LocationAccessRequest, error) {
	args := m.Called(ctx, orgID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationAccessRequest), args.Error(1)
}
func (m *MockLocationRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAllowedLocationRepo
type MockAllowedLocationRepo struct {
	mock.Mock
}

func (m *MockAllowedLocationRepo) GetByID(ctx context.Context, id int32) (*domain.AllowedLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllowedLocation), args.Error(1)
}
func (m *MockAllowedLocationRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllowedLocation), args.Error(1)
}
func (m *MockAllowedLocationRepo) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, []domain.LocationAccessRequest, error) {
	args := m.Called(ctx, orgID)
	var locs []domain.AllowedLocation
	var reqs []domain.LocationAccessRequest
	if args.Get(0) != nil {
		locs = args.Get(0).([]domain.AllowedLocation)
	}
	if args.Get(1) != nil {
		reqs = args.Get(1).([]domain.LocationAccessRequest)
	}
	return locs, reqs, args.Error(2)
}
func (m *MockAllowedLocationRepo) HasActiveByOrg(ctx context.Context, orgID int32) (bool, error) {
	args := m.Called(ctx, orgID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAllowedLocationRepo) Revoke(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAllowedLocationRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAllowedLocationRepo) PurgeDeletedBefore(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockPolicyRepo
type MockPolicyRepo struct {
	mock.Mock
}

func (m *MockPolicyRepo) GetByOrg(ctx context.Context, orgID int32) (*domain.OrgLocationPolicy, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrgLocationPolicy), args.Error(1)
}
func (m *MockPolicyRepo) Upsert(ctx context.Context, policy *domain.OrgLocationPolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// MockWorkflowRepo
type MockWorkflowRepo struct {
	mock.Mock
}

func (m *MockWorkflowRepo) Approve(ctx context.Context, id int32) (*domain.LocationAccessRequest, *domain.AllowedLocation, error) {
	args := m.Called(ctx, id)
	var req *domain.LocationAccessRequest
	var loc *domain.AllowedLocation
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.LocationAccessRequest)
	}
	if args.Get(1) != nil {
		loc = args.Get(1).(*domain.AllowedLocation)
	}
	return req, loc, args.Error(2)
}
func (m *MockWorkflowRepo) Reject(ctx context.Context, id int32, comments string) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *MockWorkflowRepo) Stop(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}
func (m *MockWorkflowRepo) Start(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationAccessRequest), args.Error(1)
}

// MockSummaryRepo
type MockSummaryRepo struct {
	mock.Mock
}

func (m *MockSummaryRepo) Summarize(ctx context.Context) ([]domain.OrgGeofenceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrgGeofenceSummary), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReviewDecision(ctx context.Context, toEmail string, req *domain.LocationAccessRequest) error {
	args := m.Called(ctx, toEmail, req)
	return args.Error(0)
}
