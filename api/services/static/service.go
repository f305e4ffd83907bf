package staticservice

import (
	"leaguedash/api/dto"
	"leaguedash/fetcher/assets"
	queuevalues "leaguedash/pkg/riotvalues/queue"
)

// VersionResolver is the asset version source.
type VersionResolver interface {
	Latest() string
	Resolve(explicit string) string
}

// StaticService serves data that doesn't depend on a player: queues and asset versions.
type StaticService struct {
	resolver VersionResolver
}

// StaticServiceDeps is the dependency list for the static service.
type StaticServiceDeps struct {
	Resolver VersionResolver
}

func NewStaticService(deps *StaticServiceDeps) *StaticService {
	return &StaticService{resolver: deps.Resolver}
}

// ClassifyQueue returns the display metadata of a queue.
func (ss *StaticService) ClassifyQueue(queueID int) queuevalues.Classification {
	return queuevalues.Classify(queueID)
}

// GetAssetVersion returns the asset version for a game version, the latest when it is empty or malformed.
func (ss *StaticService) GetAssetVersion(gameVersion string) *dto.AssetVersion {
	latest := ss.resolver.Latest()
	version := ss.resolver.Resolve(gameVersion)

	_, fromGame := assets.FormatGameVersion(gameVersion)
	return &dto.AssetVersion{
		GameVersion: gameVersion,
		Version:     version,
		Latest:      latest,
		FromGame:    fromGame,
	}
}
