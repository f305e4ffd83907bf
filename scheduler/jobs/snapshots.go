package jobs

import (
	"context"
	"fmt"
	"leaguedash/pkg/logger"
	"time"

	"github.com/jonboulle/clockwork"
)

const pruneTimeout = 5 * time.Minute

// SnapshotPruner deletes old match snapshots.
type SnapshotPruner interface {
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PruneSnapshots removes the snapshots of matches that ended more than retention ago.
func PruneSnapshots(pruner SnapshotPruner, retention time.Duration, clock clockwork.Clock, log *logger.Logger) error {
	if retention <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	startTime := clock.Now()
	cutoff := startTime.Add(-retention)

	deleted, err := pruner.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		log.Errorf("Snapshot pruning failed: %v", err)
		return fmt.Errorf("couldn't prune snapshots: %w", err)
	}

	log.Infof("Pruned %d snapshots of matches ended before %s in %v", deleted, cutoff.Format(time.RFC3339), clock.Since(startTime))
	return nil
}
