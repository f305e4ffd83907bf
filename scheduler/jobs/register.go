package jobs

import (
	"fmt"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// RegisterVersionRefresh refreshes the asset version every interval, starting right away.
func RegisterVersionRefresh(s gocron.Scheduler, resolver VersionRefresher, interval time.Duration, log *logger.Logger) error {
	_, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(RefreshVersion, resolver, log),
		gocron.WithName("version-refresh"),
		gocron.WithTags("assets"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create version refresh job: %w", err)
	}
	return nil
}

// RegisterLogUpload ships the process log once per day at 4:00 AM.
func RegisterLogUpload(s gocron.Scheduler, uploader LogUploader, bucket config.BucketConfiguration, prefix string) error {
	_, err := s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(UploadLogs, uploader, bucket, prefix, clockwork.NewRealClock()),
		gocron.WithName(prefix+"-log-upload"),
		gocron.WithTags("logs"),
	)
	if err != nil {
		return fmt.Errorf("failed to create log upload job: %w", err)
	}
	return nil
}

// RegisterSnapshotPrune removes old match snapshots once per day at 3:00 AM.
func RegisterSnapshotPrune(s gocron.Scheduler, pruner SnapshotPruner, retention time.Duration, log *logger.Logger) error {
	_, err := s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(PruneSnapshots, pruner, retention, clockwork.NewRealClock(), log),
		gocron.WithName("snapshot-prune"),
		gocron.WithTags("snapshots"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot prune job: %w", err)
	}
	return nil
}
