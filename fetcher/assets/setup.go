package assets

import (
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"

	"github.com/jonboulle/clockwork"
)

// NewConfiguredResolver creates the resolver used by the processes, fetching from
// Data Dragon and sharing the version list through client. client may be nil.
func NewConfiguredResolver(cfg *config.Config, client VersionListClient, log *logger.Logger) *VersionResolver {
	deps := &VersionResolverDeps{
		Source:   NewDDragonClient(cfg.Assets.DDragonURL, requests.NewHTTPClient(cfg.Backend.Timeout, nil)),
		Clock:    clockwork.NewRealClock(),
		TTL:      cfg.Assets.VersionTTL,
		Fallback: cfg.Assets.FallbackVersion,
		Logger:   log,
	}
	if client != nil {
		deps.Store = NewRedisVersionStore(client)
	}

	return NewVersionResolver(deps)
}
