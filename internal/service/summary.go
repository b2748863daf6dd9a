package service

import (
	"context"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"
)

type summaryService struct {
	summaryRepo repository.SummaryRepository
}

func NewSummaryService(summaryRepo repository.SummaryRepository) SummaryService {
	return &summaryService{summaryRepo: summaryRepo}
}

func (s *summaryService) Summarize(ctx context.Context) ([]domain.OrgGeofenceSummary, error) {
	return s.summaryRepo.Summarize(ctx)
}
