package requests

import (
	"context"
	"fmt"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"
	"net/url"
	"strconv"
)

// Operation names used on errors and logs.
const (
	OpFetchPlayer       = "fetch player"
	OpFetchAccount      = "fetch account"
	OpFetchSummoner     = "fetch summoner"
	OpFetchRankings     = "fetch rankings"
	OpFetchMatchHistory = "fetch match history"
	OpFetchMatchDetail  = "fetch match detail"
)

// BackendClient calls the stats backend REST API.
type BackendClient struct {
	baseURL string
	http    *HTTPClient
}

// NewBackendClient creates a client for the backend at baseURL.
func NewBackendClient(baseURL string, http *HTTPClient) *BackendClient {
	return &BackendClient{baseURL: baseURL, http: http}
}

func (b *BackendClient) endpoint(path string, query url.Values) string {
	if len(query) == 0 {
		return b.baseURL + path
	}
	return b.baseURL + path + "?" + query.Encode()
}

func regionQuery(region string) url.Values {
	return url.Values{"region": []string{region}}
}

// GetPlayer returns account, summoner and rankings of a Riot ID.
func (b *BackendClient) GetPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error) {
	path := fmt.Sprintf("/player/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))
	key := gameName + "#" + tagLine
	profile, err := GetEnvelope[*player.PlayerProfile](ctx, b.http, OpFetchPlayer, key, b.endpoint(path, regionQuery(region)))
	return requirePayload(profile, err, OpFetchPlayer, key)
}

// GetAccount resolves a Riot ID to an account.
func (b *BackendClient) GetAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error) {
	path := fmt.Sprintf("/account/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))
	key := gameName + "#" + tagLine
	account, err := GetEnvelope[*player.Account](ctx, b.http, OpFetchAccount, key, b.endpoint(path, regionQuery(region)))
	return requirePayload(account, err, OpFetchAccount, key)
}

// GetSummonerByPuuid returns the summoner profile of a puuid.
func (b *BackendClient) GetSummonerByPuuid(ctx context.Context, puuid, region string) (*player.Summoner, error) {
	path := "/summoner/puuid/" + url.PathEscape(puuid)
	summoner, err := GetEnvelope[*player.Summoner](ctx, b.http, OpFetchSummoner, puuid, b.endpoint(path, regionQuery(region)))
	return requirePayload(summoner, err, OpFetchSummoner, puuid)
}

// GetRankings returns the ranked entries of a summoner.
func (b *BackendClient) GetRankings(ctx context.Context, summonerID, region string) ([]player.RankedEntry, error) {
	path := "/rankings/" + url.PathEscape(summonerID)
	return GetEnvelope[[]player.RankedEntry](ctx, b.http, OpFetchRankings, summonerID, b.endpoint(path, regionQuery(region)))
}

// GetMatchIDs returns up to count match ids starting at offset, newest first.
func (b *BackendClient) GetMatchIDs(ctx context.Context, puuid, region string, offset, count int) ([]string, error) {
	path := fmt.Sprintf("/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	query := regionQuery(region)
	query.Set("start", strconv.Itoa(offset))
	query.Set("count", strconv.Itoa(count))

	key := fmt.Sprintf("%s[%d:%d]", puuid, offset, offset+count)
	ids, err := GetEnvelope[[]string](ctx, b.http, OpFetchMatchHistory, key, b.endpoint(path, query))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// GetMatch returns the full record of a match.
func (b *BackendClient) GetMatch(ctx context.Context, matchID, region string) (*match.MatchRecord, error) {
	path := "/matches/" + url.PathEscape(matchID)
	m, err := GetEnvelope[*match.MatchRecord](ctx, b.http, OpFetchMatchDetail, matchID, b.endpoint(path, regionQuery(region)))
	if m, err = requirePayload(m, err, OpFetchMatchDetail, matchID); err != nil {
		return nil, err
	}
	if m.Metadata.MatchID == "" {
		m.Metadata.MatchID = matchID
	}
	return m, nil
}

// requirePayload turns a success envelope without data into a NotFound error.
func requirePayload[T any](value *T, err error, op, key string) (*T, error) {
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, &APIError{Op: op, Key: key, Kind: KindNotFound, Message: "empty payload"}
	}
	return value, nil
}
