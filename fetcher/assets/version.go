package assets

import (
	"context"
	"errors"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/messages"
	"leaguedash/pkg/models/match"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

const (
	versionKey     = "ddragon:versions"
	keptVersions   = 3
	refreshTimeout = 10 * time.Second
)

var (
	ErrNoVersions = errors.New("no versions available")
	versionRegex  = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// VersionSource lists the published Data Dragon versions, newest first.
type VersionSource interface {
	FetchVersions(ctx context.Context) ([]string, error)
}

// VersionStore shares the latest versions between processes.
type VersionStore interface {
	LatestVersion(ctx context.Context) (string, error)
	SaveVersions(ctx context.Context, versions []string) error
}

// DDragonClient fetches versions from Data Dragon.
type DDragonClient struct {
	baseURL string
	http    *requests.HTTPClient
}

// NewDDragonClient creates a client for the Data Dragon at baseURL.
func NewDDragonClient(baseURL string, http *requests.HTTPClient) *DDragonClient {
	return &DDragonClient{baseURL: baseURL, http: http}
}

// FetchVersions gets every version from the versions endpoint.
func (d *DDragonClient) FetchVersions(ctx context.Context) ([]string, error) {
	versions, err := requests.GetJSON[[]string](ctx, d.http, d.baseURL+"/api/versions.json")
	if err != nil {
		return nil, fmt.Errorf("couldn't get the current version: %w", err)
	}
	if len(versions) == 0 {
		return nil, ErrNoVersions
	}
	return versions, nil
}

// FormatGameVersion converts a match game version ("14.23.590.9183") to the
// Data Dragon version of its patch ("14.23.1").
func FormatGameVersion(gameVersion string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(gameVersion), ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "." + parts[1] + ".1", true
}

// IsValidVersion reports whether the value looks like "major.minor.patch".
func IsValidVersion(version string) bool {
	return versionRegex.MatchString(version)
}

// VersionResolver keeps the latest Data Dragon version.
type VersionResolver struct {
	source   VersionSource
	store    VersionStore
	clock    clockwork.Clock
	ttl      time.Duration
	fallback string
	logger   *logger.Logger

	mu        sync.RWMutex
	latest    string
	checkedAt time.Time
	group     singleflight.Group
}

// VersionResolverDeps is the dependency list of the resolver. Store is optional.
type VersionResolverDeps struct {
	Source   VersionSource
	Store    VersionStore
	Clock    clockwork.Clock
	TTL      time.Duration
	Fallback string
	Logger   *logger.Logger
}

// NewVersionResolver creates a resolver that starts on the fallback version.
func NewVersionResolver(deps *VersionResolverDeps) *VersionResolver {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &VersionResolver{
		source:   deps.Source,
		store:    deps.Store,
		clock:    clock,
		ttl:      deps.TTL,
		fallback: deps.Fallback,
		logger:   deps.Logger,
	}
}

// Latest returns the cached latest version, or the fallback before the first
// successful fetch. It never blocks: a stale value triggers a background refresh.
func (v *VersionResolver) Latest() string {
	v.mu.RLock()
	latest, checkedAt := v.latest, v.checkedAt
	v.mu.RUnlock()

	if v.isStale(checkedAt) {
		v.group.DoChan(versionKey, func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()
			return v.refresh(ctx, false)
		})
	}

	if latest == "" {
		return v.fallback
	}
	return latest
}

// Resolve returns the asset version for an explicit game version, or the latest when absent or malformed.
func (v *VersionResolver) Resolve(explicit string) string {
	if explicit != "" {
		if formatted, ok := FormatGameVersion(explicit); ok {
			return formatted
		}
	}
	return v.Latest()
}

// ResolveFromMatch returns the asset version of the patch a match was played on.
func (v *VersionResolver) ResolveFromMatch(m *match.MatchRecord) string {
	if m == nil {
		return v.Latest()
	}
	return v.Resolve(m.Info.GameVersion)
}

// Refresh fetches the versions now, sharing the call with any refresh in flight.
func (v *VersionResolver) Refresh(ctx context.Context) (string, error) {
	ch := v.group.DoChan(versionKey, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return v.refresh(flightCtx, true)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return v.Latest(), res.Err
		}
		return res.Val.(string), nil
	}
}

func (v *VersionResolver) isStale(checkedAt time.Time) bool {
	return checkedAt.IsZero() || v.clock.Since(checkedAt) >= v.ttl
}

// refresh runs inside the single flight. A failed attempt also counts as a
// check so the source is asked at most once per ttl.
func (v *VersionResolver) refresh(ctx context.Context, force bool) (string, error) {
	v.mu.RLock()
	latest, checkedAt := v.latest, v.checkedAt
	v.mu.RUnlock()

	if !force && !v.isStale(checkedAt) {
		return latest, nil
	}

	versions, err := v.source.FetchVersions(ctx)
	if err == nil && len(versions) == 0 {
		err = ErrNoVersions
	}

	if err != nil {
		v.logger.Warnf(messages.VersionFetchFailedMsg, err)
		shared := v.sharedVersion(ctx)

		v.mu.Lock()
		v.checkedAt = v.clock.Now()
		if v.latest == "" && shared != "" {
			v.latest = shared
		}
		v.mu.Unlock()

		return "", err
	}

	v.mu.Lock()
	v.latest = versions[0]
	v.checkedAt = v.clock.Now()
	v.mu.Unlock()

	if v.store != nil {
		if err := v.store.SaveVersions(ctx, versions[:min(keptVersions, len(versions))]); err != nil {
			v.logger.Errorf("couldn't share the versions: %v", err)
		}
	}

	return versions[0], nil
}

// sharedVersion reads the version saved by another process, empty when unavailable.
func (v *VersionResolver) sharedVersion(ctx context.Context) string {
	if v.store == nil {
		return ""
	}

	version, err := v.store.LatestVersion(ctx)
	if err != nil || !IsValidVersion(version) {
		return ""
	}
	return version
}
