package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"leaguedash/pkg/config"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrNoLogFile = errors.New("logger has no backing file")

// Logger writes leveled lines to a temporary file and mirrors them to an output.
type Logger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	out      io.Writer
	now      func() time.Time
}

// Create the log instance with a temporary file, mirroring every line to out.
func CreateLogger(out io.Writer) (*Logger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = io.Discard
	}

	return &Logger{
		logFile:  f,
		filePath: f.Name(),
		out:      out,
		now:      time.Now,
	}, nil
}

// NewWriterLogger creates a logger without a file, used by tests and one-shot tools.
func NewWriterLogger(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out, now: time.Now}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriterLogger(io.Discard)
}

// Log a simple info.
func (l *Logger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.write("[WARN]", format, args...)
}

// Log a error.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
func (l *Logger) write(level string, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", level, timestamp, fmt.Sprintf(format, args...))

	if l.logFile != nil {
		l.logFile.WriteString(line)
	}
	io.WriteString(l.out, line)
}

// Path returns the backing file path, empty when the logger has no file.
func (l *Logger) Path() string {
	return l.filePath
}

// Clean the file contents.
func (l *Logger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return
	}

	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)
}

// Close removes the temporary file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}

	err := l.logFile.Close()
	os.Remove(l.filePath)
	l.logFile = nil
	return err
}

// Upload the log to a s3 bucket and truncate it afterwards.
func (l *Logger) UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return ErrNoLogFile
	}

	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	cfg := aws.Config{
		Region: bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				bucket.AccessKey,
				bucket.AccessSecret,
				"",
			),
		),
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if bucket.Endpoint != "" {
			o.BaseEndpoint = aws.String(bucket.Endpoint)
			o.UsePathStyle = true
		}
	})

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)

	return nil
}
