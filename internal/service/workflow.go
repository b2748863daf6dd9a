package service

import (
	"context"
	"strings"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository"
)

type workflowService struct {
	workflowRepo repository.WorkflowRepository
	emailSvc     EmailService
	notifyEmail  string
}

// NewWorkflowService builds the approval workflow engine. notifyEmail is the
// address decision notifications go to; empty disables them.
func NewWorkflowService(workflowRepo repository.WorkflowRepository, emailSvc EmailService, notifyEmail string) WorkflowService {
	return &workflowService{
		workflowRepo: workflowRepo,
		emailSvc:     emailSvc,
		notifyEmail:  notifyEmail,
	}
}

func (s *workflowService) Review(ctx context.Context, id int32, action, comments string) (*domain.LocationAccessRequest, error) {
	var req *domain.LocationAccessRequest
	var err error

	switch strings.ToLower(action) {
	case "approve":
		req, _, err = s.workflowRepo.Approve(ctx, id)
	case "reject":
		req, err = s.workflowRepo.Reject(ctx, id, comments)
	default:
		return nil, domain.NewValidationError("action", "must be approve or reject")
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, req)
	return req, nil
}

func (s *workflowService) StopAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	return s.workflowRepo.Stop(ctx, id)
}

func (s *workflowService) StartAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	return s.workflowRepo.Start(ctx, id)
}

// notify emails the review outcome. The transition has already committed, so
// send failures are logged and dropped.
func (s *workflowService) notify(ctx context.Context, req *domain.LocationAccessRequest) {
	if s.emailSvc == nil || s.notifyEmail == "" {
		return
	}
	if err := s.emailSvc.SendReviewDecision(ctx, s.notifyEmail, req); err != nil {
		logger.Warn("Failed to send review decision email", "request_id", req.ID, "error", err)
	}
}
