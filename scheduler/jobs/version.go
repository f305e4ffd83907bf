package jobs

import (
	"context"
	"fmt"
	"leaguedash/pkg/logger"
	"time"
)

const versionRefreshTimeout = 30 * time.Second

// VersionRefresher fetches the latest asset version.
type VersionRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

// RefreshVersion refreshes the latest Data Dragon version, shared with the API instances through redis.
func RefreshVersion(resolver VersionRefresher, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), versionRefreshTimeout)
	defer cancel()

	version, err := resolver.Refresh(ctx)
	if err != nil {
		log.Errorf("Version refresh failed, serving %s: %v", version, err)
		return fmt.Errorf("couldn't refresh the asset version: %w", err)
	}

	log.Infof("Latest asset version is %s", version)
	return nil
}
