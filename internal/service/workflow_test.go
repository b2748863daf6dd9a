package service

import (
	"context"
	"errors"
	"testing"

	"geoaccess-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowService_Review(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		workflowRepo := new(MockWorkflowRepo)
		emailSvc := new(MockEmailService)
		svc := NewWorkflowService(workflowRepo, emailSvc, "ops@example.com")

		approved := &domain.LocationAccessRequest{ID: 1, Status: domain.RequestStatusApproved}
		loc := &domain.AllowedLocation{ID: 10, SourceRequestID: 1, IsActive: true}
		workflowRepo.On("Approve", ctx, int32(1)).Return(approved, loc, nil).Once()
		emailSvc.On("SendReviewDecision", ctx, "ops@example.com", approved).Return(nil).Once()

		req, err := svc.Review(ctx, 1, "approve", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, req.Status)
		workflowRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Reject stores comments", func(t *testing.T) {
		workflowRepo := new(MockWorkflowRepo)
		svc := NewWorkflowService(workflowRepo, nil, "")

		rejected := &domain.LocationAccessRequest{ID: 2, Status: domain.RequestStatusRejected, ReviewComments: "address unverifiable"}
		workflowRepo.On("Reject", ctx, int32(2), "address unverifiable").Return(rejected, nil).Once()

		req, err := svc.Review(ctx, 2, "reject", "address unverifiable")
		assert.NoError(t, err)
		assert.Equal(t, "address unverifiable", req.ReviewComments)
		workflowRepo.AssertExpectations(t)
	})

	t.Run("Unknown action rejected", func(t *testing.T) {
		svc := NewWorkflowService(new(MockWorkflowRepo), nil, "")

		_, err := svc.Review(ctx, 3, "escalate", "")
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Second approve surfaces InvalidStateError", func(t *testing.T) {
		workflowRepo := new(MockWorkflowRepo)
		svc := NewWorkflowService(workflowRepo, nil, "")

		stateErr := domain.NewInvalidStateError(4, domain.RequestStatusApproved, "approve")
		workflowRepo.On("Approve", ctx, int32(4)).Return(nil, nil, stateErr).Once()

		_, err := svc.Review(ctx, 4, "approve", "")
		var invalidState *domain.InvalidStateError
		assert.ErrorAs(t, err, &invalidState)
		assert.Equal(t, domain.RequestStatusApproved, invalidState.Current)
	})

	t.Run("Email failure does not fail the transition", func(t *testing.T) {
		workflowRepo := new(MockWorkflowRepo)
		emailSvc := new(MockEmailService)
		svc := NewWorkflowService(workflowRepo, emailSvc, "ops@example.com")

		approved := &domain.LocationAccessRequest{ID: 5, Status: domain.RequestStatusApproved}
		workflowRepo.On("Approve", ctx, int32(5)).Return(approved, &domain.AllowedLocation{}, nil).Once()
		emailSvc.On("SendReviewDecision", ctx, "ops@example.com", approved).Return(errors.New("sendgrid down")).Once()

		_, err := svc.Review(ctx, 5, "approve", "")
		assert.NoError(t, err)
	})
}

func TestWorkflowService_StopStart(t *testing.T) {
	ctx := context.Background()
	workflowRepo := new(MockWorkflowRepo)
	svc := NewWorkflowService(workflowRepo, nil, "")

	stopped := &domain.LocationAccessRequest{ID: 1, Status: domain.RequestStatusStopped}
	workflowRepo.On("Stop", ctx, int32(1)).Return(stopped, nil).Once()

	req, err := svc.StopAccess(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusStopped, req.Status)

	restarted := &domain.LocationAccessRequest{ID: 1, Status: domain.RequestStatusApproved}
	workflowRepo.On("Start", ctx, int32(1)).Return(restarted, nil).Once()

	req, err = svc.StartAccess(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, req.Status)
	workflowRepo.AssertExpectations(t)
}
