package player

import "strings"

// Account is the Riot account of a player.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the League specific profile.
type Summoner struct {
	ID            string `json:"id,omitempty"`
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

// RankedEntry is one ranked queue standing.
type RankedEntry struct {
	LeagueID     string      `json:"leagueId,omitempty"`
	Puuid        string      `json:"puuid"`
	QueueType    string      `json:"queueType"`
	Tier         string      `json:"tier"`
	Rank         string      `json:"rank"`
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries,omitempty"`
}

// PlayerProfile is the aggregate served by the backend player endpoint.
type PlayerProfile struct {
	Account  Account       `json:"account"`
	Summoner Summoner      `json:"summoner"`
	Rankings []RankedEntry `json:"rankings"`
}

// RiotID returns "GameName#TagLine".
func (a Account) RiotID() string {
	return a.GameName + "#" + a.TagLine
}

// CacheKey identifies a player search. Riot ids are case insensitive.
func CacheKey(gameName, tagLine, region string) string {
	return strings.ToLower(strings.TrimSpace(gameName)) + "#" +
		strings.ToLower(strings.TrimSpace(tagLine)) + "@" +
		strings.ToUpper(strings.TrimSpace(region))
}

// TotalGames sums wins and losses across every ranked entry.
func (p *PlayerProfile) TotalGames() (wins, losses int) {
	for _, r := range p.Rankings {
		wins += r.Wins
		losses += r.Losses
	}
	return wins, losses
}
