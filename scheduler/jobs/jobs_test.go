package jobs

import (
	"context"
	"errors"
	"leaguedash/internal/testutil"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"testing"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error {
	return m.Called(ctx, bucket, objectKey).Error(0)
}

func (m *mockUploader) CleanFile() {
	m.Called()
}

type mockPruner struct {
	mock.Mock
}

func (m *mockPruner) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestRefreshVersion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		refresher := new(mockRefresher)
		refresher.On("Refresh", mock.Anything).Return("15.20.1", nil)

		require.NoError(t, RefreshVersion(refresher, logger.Discard()))
		testutil.VerifyAllMocks(t, refresher)
	})

	t.Run("failure", func(t *testing.T) {
		refresher := new(mockRefresher)
		refresher.On("Refresh", mock.Anything).Return("15.13.1", errors.New("ddragon down"))

		err := RefreshVersion(refresher, logger.Discard())
		assert.ErrorContains(t, err, "ddragon down")
		testutil.VerifyAllMocks(t, refresher)
	})
}

func TestUploadLogs(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 14, 3, 5, 0, 0, time.UTC))
	bucket := config.BucketConfiguration{Region: "us-east-1", LogBucket: "logs"}

	t.Run("uploads with a dated key", func(t *testing.T) {
		uploader := new(mockUploader)
		uploader.On("UploadToS3Bucket", mock.Anything, bucket, "api/2025-07-14-03-05.log").Return(nil)

		require.NoError(t, UploadLogs(uploader, bucket, "api", clock))
		testutil.VerifyAllMocks(t, uploader)
		uploader.AssertNotCalled(t, "CleanFile")
	})

	t.Run("cleans the file when the upload fails", func(t *testing.T) {
		uploader := new(mockUploader)
		uploader.On("UploadToS3Bucket", mock.Anything, bucket, "scheduler/2025-07-14-03-05.log").Return(errors.New("denied"))
		uploader.On("CleanFile").Return()

		assert.Error(t, UploadLogs(uploader, bucket, "scheduler", clock))
		testutil.VerifyAllMocks(t, uploader)
	})

	t.Run("no bucket only truncates", func(t *testing.T) {
		uploader := new(mockUploader)
		uploader.On("CleanFile").Return()

		require.NoError(t, UploadLogs(uploader, config.BucketConfiguration{}, "api", clock))
		testutil.VerifyAllMocks(t, uploader)
		uploader.AssertNotCalled(t, "UploadToS3Bucket", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPruneSnapshots(t *testing.T) {
	now := time.Date(2025, 7, 14, 4, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	retention := 30 * 24 * time.Hour

	t.Run("deletes before the cutoff", func(t *testing.T) {
		pruner := new(mockPruner)
		pruner.On("DeleteEndedBefore", mock.Anything, now.Add(-retention)).Return(int64(12), nil)

		require.NoError(t, PruneSnapshots(pruner, retention, clock, logger.Discard()))
		testutil.VerifyAllMocks(t, pruner)
	})

	t.Run("propagates errors", func(t *testing.T) {
		pruner := new(mockPruner)
		pruner.On("DeleteEndedBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

		assert.ErrorContains(t, PruneSnapshots(pruner, retention, clock, logger.Discard()), "connection reset")
	})

	t.Run("disabled retention", func(t *testing.T) {
		pruner := new(mockPruner)

		require.NoError(t, PruneSnapshots(pruner, 0, clock, logger.Discard()))
		pruner.AssertNotCalled(t, "DeleteEndedBefore", mock.Anything, mock.Anything)
	})
}

func TestRegisterJobs(t *testing.T) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	require.NoError(t, err)
	defer s.Shutdown()

	refresher := new(mockRefresher)
	uploader := new(mockUploader)
	pruner := new(mockPruner)

	require.NoError(t, RegisterVersionRefresh(s, refresher, 5*time.Minute, logger.Discard()))
	require.NoError(t, RegisterLogUpload(s, uploader, config.BucketConfiguration{}, "scheduler"))
	require.NoError(t, RegisterSnapshotPrune(s, pruner, time.Hour, logger.Discard()))

	names := make([]string, 0)
	for _, job := range s.Jobs() {
		names = append(names, job.Name())
	}
	assert.ElementsMatch(t, []string{"version-refresh", "scheduler-log-upload", "snapshot-prune"}, names)
}
