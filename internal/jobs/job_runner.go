package jobs

import (
	"context"
	"strconv"
	"strings"
	"time"

	"jobportal-backend/internal/config"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	appRepo repository.ApplicationRepository
	blobs   storage.BlobStorage
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(appRepo repository.ApplicationRepository, blobs storage.BlobStorage, cfg *config.Config) *JobRunner {
	return &JobRunner{
		appRepo: appRepo,
		blobs:   blobs,
		config:  cfg,
	}
}

// Config exposes the configuration for schedule registration
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

// SweepOrphanedBlobs reclaims blobs left behind by best-effort deletes.
// Rollback and purge only try once to remove uploaded objects; anything they
// miss is an orphan whose application row no longer exists, and this sweep
// removes it. Blob keys are `{application_id}/...`, so the owning row check
// is a prefix parse plus an existence query.
func (jr *JobRunner) SweepOrphanedBlobs() {
	jr.runWithRecovery("SweepOrphanedBlobs", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		keys, err := jr.blobs.List(ctx, "")
		if err != nil {
			logger.Error("Sweep failed to list blobs", "error", err)
			return
		}

		// One existence check per application prefix, not per key.
		known := make(map[int32]bool)
		var removed int
		var reclaimed int64
		for _, key := range keys {
			prefix, rest, found := strings.Cut(key, "/")
			if !found || rest == "" {
				continue
			}
			id64, err := strconv.ParseInt(prefix, 10, 32)
			if err != nil {
				continue
			}
			appID := int32(id64)

			exists, ok := known[appID]
			if !ok {
				exists, err = jr.appRepo.Exists(ctx, appID)
				if err != nil {
					logger.Error("Sweep failed to check application", "application_id", appID, "error", err)
					return
				}
				known[appID] = exists
			}
			if exists {
				continue
			}

			_, size, err := jr.blobs.Exists(ctx, key)
			if err != nil {
				logger.Warn("Sweep failed to stat orphaned blob", "key", key, "error", err)
			}
			if err := jr.blobs.Delete(ctx, key); err != nil {
				logger.Warn("Sweep failed to delete orphaned blob", "key", key, "error", err)
				continue
			}
			removed++
			reclaimed += size
		}

		logger.Info("Orphaned blob sweep finished", "scanned", len(keys), "removed", removed, "reclaimed_bytes", reclaimed)
	})
}
