package jobs

import (
	"context"
	"fmt"
	"leaguedash/pkg/config"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

const logUploadTimeout = time.Minute

// LogUploader is a file backed logger.
type LogUploader interface {
	UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error
	CleanFile()
}

// UploadLogs ships the log file of a process to the bucket under prefix and truncates it.
// Without a configured bucket the file is only truncated.
func UploadLogs(uploader LogUploader, bucket config.BucketConfiguration, prefix string, clock clockwork.Clock) error {
	if bucket.LogBucket == "" {
		uploader.CleanFile()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), logUploadTimeout)
	defer cancel()

	objectKey := fmt.Sprintf("%s/%s.log", prefix, clock.Now().UTC().Format("2006-01-02-15-04"))
	if err := uploader.UploadToS3Bucket(ctx, bucket, objectKey); err != nil {
		log.Printf("Couldn't send the log to s3: %v", err)

		// Clean the file in the case it was a S3 error and not a file error.
		uploader.CleanFile()
		return err
	}

	log.Printf("Successfully sent log to s3 with key: %s", objectKey)
	return nil
}
