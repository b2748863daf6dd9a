package postgres

import (
	"database/sql"

	"geoaccess-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.LocationRequestRepository
	repository.AllowedLocationRepository
	repository.PolicyRepository
	repository.WorkflowRepository
	repository.SummaryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		LocationRequestRepository: NewLocationRequestRepository(db),
		AllowedLocationRepository: NewAllowedLocationRepository(db),
		PolicyRepository:          NewPolicyRepository(db),
		WorkflowRepository:        NewWorkflowRepository(db),
		SummaryRepository:         NewSummaryRepository(db),
	}
}
