package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/openhrv/etcore/internal/modules/analysis"
)

// SnapshotPruneJob trims old computation snapshots from storage.
// Runs nightly; the newest snapshot per kind always survives.
type SnapshotPruneJob struct {
	log       zerolog.Logger
	repo      *analysis.Repository
	retention time.Duration
}

// NewSnapshotPruneJob creates a new snapshot prune job
func NewSnapshotPruneJob(repo *analysis.Repository, retention time.Duration, log zerolog.Logger) *SnapshotPruneJob {
	return &SnapshotPruneJob{
		log:       log.With().Str("job", "snapshot_prune").Logger(),
		repo:      repo,
		retention: retention,
	}
}

// Name returns the job name
func (j *SnapshotPruneJob) Name() string {
	return "snapshot_prune"
}

// Run executes the prune
func (j *SnapshotPruneJob) Run() error {
	start := time.Now()

	deleted, err := j.repo.Prune(j.retention)
	if err != nil {
		return err
	}

	j.log.Info().
		Int64("deleted", deleted).
		Dur("duration_ms", time.Since(start)).
		Msg("Snapshot prune completed")

	return nil
}
