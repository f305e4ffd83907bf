package filters

import (
	"leaguedash/pkg/messages"
	"leaguedash/pkg/regions"
	"strconv"
	"strings"
)

// URI params for the match endpoints.
type MatchURIParams struct {
	Region  string `uri:"region" binding:"required"`
	MatchID string `uri:"matchId" binding:"required"`
}

// Query params for the match endpoints.
type MatchQueryParams struct {
	Viewer string `form:"viewer" binding:"required"`
}

type MatchFilter struct {
	MatchID string
	Region  regions.Region
	Viewer  string
}

func NewMatchFilter(pp *MatchURIParams, qp *MatchQueryParams) (*MatchFilter, error) {
	region, err := regions.Parse(pp.Region)
	if err != nil {
		return nil, invalid("region", err.Error())
	}

	return &MatchFilter{
		MatchID: strings.TrimSpace(pp.MatchID),
		Region:  region,
		Viewer:  strings.TrimSpace(qp.Viewer),
	}, nil
}

// URI params for the queue endpoint.
type QueueURIParams struct {
	QueueID string `uri:"queueId" binding:"required"`
}

// ParseQueueID validates a queue id. Unknown ids are valid, they classify as special modes.
func ParseQueueID(pp *QueueURIParams) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(pp.QueueID))
	if err != nil {
		return 0, invalid("queueId", messages.InvalidQueueID)
	}
	return id, nil
}

// Query params for the asset version endpoint.
type VersionQueryParams struct {
	GameVersion string `form:"gameVersion"`
}

// URI params for the rankings endpoint.
type RankingsURIParams struct {
	Region string `uri:"region" binding:"required"`
	Puuid  string `uri:"puuid" binding:"required"`
}

type RankingsFilter struct {
	Puuid  string
	Region regions.Region
}

func NewRankingsFilter(pp *RankingsURIParams) (*RankingsFilter, error) {
	region, err := regions.Parse(pp.Region)
	if err != nil {
		return nil, invalid("region", err.Error())
	}

	return &RankingsFilter{Puuid: strings.TrimSpace(pp.Puuid), Region: region}, nil
}
