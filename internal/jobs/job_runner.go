package jobs

import (
	"context"
	"time"

	"geoaccess-backend/internal/config"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository"
	"geoaccess-backend/internal/service"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	locRepo    repository.AllowedLocationRepository
	summarySvc service.SummaryService
	config     *config.Config
}

func NewJobRunner(locRepo repository.AllowedLocationRepository, summarySvc service.SummaryService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		locRepo:    locRepo,
		summarySvc: summarySvc,
		config:     cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SnapshotSummary logs the cross-org geofence rollup so operator dashboards
// have a daily baseline in the log stream.
func (jr *JobRunner) SnapshotSummary() {
	jr.runWithRecovery("snapshot_summary", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		summaries, err := jr.summarySvc.Summarize(ctx)
		if err != nil {
			logger.Error("Failed to summarize geofence state", "error", err)
			return
		}
		for _, s := range summaries {
			logger.Info("Geofence summary snapshot",
				"org_id", s.OrgID,
				"active_allowed", s.ActiveAllowedCount,
				"pending", s.PendingCount,
				"approved", s.ApprovedCount,
				"stopped", s.StoppedCount,
				"enforce", s.Enforce)
		}
	})
}

// PurgeDeletedLocations hard-deletes allowed locations that have been
// soft-deleted longer than the retention window. It never touches zones that
// are merely revoked or temporarily expired.
func (jr *JobRunner) PurgeDeletedLocations() {
	jr.runWithRecovery("purge_deleted_locations", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		purged, err := jr.locRepo.PurgeDeletedBefore(ctx, jr.config.Geofence.PurgeRetentionDays)
		if err != nil {
			logger.Error("Failed to purge deleted locations", "error", err)
			return
		}
		logger.Info("Purged soft-deleted locations", "count", purged, "retention_days", jr.config.Geofence.PurgeRetentionDays)
	})
}
