package match

import (
	"errors"
	"fmt"
	"time"
)

// MatchRecord is the match payload served by the backend, in the Riot match-v5 shape.
type MatchRecord struct {
	Metadata Metadata `json:"metadata"`
	Info     Info     `json:"info"`
}

type Metadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type Info struct {
	GameCreation       int64               `json:"gameCreation"`
	GameDuration       int                 `json:"gameDuration"`
	GameEndTimestamp   int64               `json:"gameEndTimestamp"`
	GameStartTimestamp int64               `json:"gameStartTimestamp"`
	GameID             int64               `json:"gameId"`
	GameMode           string              `json:"gameMode"`
	GameType           string              `json:"gameType"`
	GameVersion        string              `json:"gameVersion"`
	MapID              int                 `json:"mapId"`
	PlatformID         string              `json:"platformId"`
	QueueID            int                 `json:"queueId"`
	Participants       []ParticipantRecord `json:"participants"`
	Teams              []TeamRecord        `json:"teams"`
}

// ParticipantRecord holds the per-player stats of a match.
type ParticipantRecord struct {
	Puuid          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	SummonerName   string `json:"summonerName"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	ChampLevel     int    `json:"champLevel"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`

	// Arena only. Placement 0 means the backend omitted it.
	Placement       int `json:"placement"`
	PlayerSubteamID int `json:"playerSubteamId"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	GoldEarned                  int `json:"goldEarned"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	TotalDamageDealt            int `json:"totalDamageDealt"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	VisionScore                 int `json:"visionScore"`

	Win bool `json:"win"`
}

type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

type Objectives struct {
	Baron      Objective `json:"baron"`
	Champion   Objective `json:"champion"`
	Dragon     Objective `json:"dragon"`
	Horde      Objective `json:"horde"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`
}

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// TeamRecord is the team level outcome of a standard match.
type TeamRecord struct {
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
}

var (
	ErrMissingMatchID   = errors.New("match has no id")
	ErrWinnerMismatch   = errors.New("exactly one team must win")
	ErrParticipantTeams = errors.New("participant result disagrees with its team")
)

// MatchID returns the match identifier.
func (m *MatchRecord) MatchID() string {
	return m.Metadata.MatchID
}

// EndedAt returns the end of the game, falling back to creation plus duration.
func (m *MatchRecord) EndedAt() time.Time {
	if m.Info.GameEndTimestamp > 0 {
		return time.UnixMilli(m.Info.GameEndTimestamp)
	}
	return time.UnixMilli(m.Info.GameCreation).Add(time.Duration(m.Info.GameDuration) * time.Second)
}

// Participant returns the participant with the given puuid.
func (m *MatchRecord) Participant(puuid string) (*ParticipantRecord, bool) {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].Puuid == puuid {
			return &m.Info.Participants[i], true
		}
	}
	return nil, false
}

// Team returns the team record with the given id.
func (m *MatchRecord) Team(teamID int) (*TeamRecord, bool) {
	for i := range m.Info.Teams {
		if m.Info.Teams[i].TeamID == teamID {
			return &m.Info.Teams[i], true
		}
	}
	return nil, false
}

// Validate checks the invariants between teams and participants.
// Matches without team records (Arena) only need an id.
func (m *MatchRecord) Validate() error {
	if m.Metadata.MatchID == "" {
		return ErrMissingMatchID
	}

	if len(m.Info.Teams) == 0 {
		return nil
	}

	if len(m.Info.Teams) == 2 && m.Info.Teams[0].Win == m.Info.Teams[1].Win {
		return fmt.Errorf("%s: %w", m.Metadata.MatchID, ErrWinnerMismatch)
	}

	for _, p := range m.Info.Participants {
		team, ok := m.Team(p.TeamID)
		if ok && team.Win != p.Win {
			return fmt.Errorf("%s: %s: %w", m.Metadata.MatchID, p.Puuid, ErrParticipantTeams)
		}
	}

	return nil
}

// Items returns the seven item slots in order.
func (p *ParticipantRecord) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// CreepScore is the sum of lane minions and neutral monsters killed.
func (p *ParticipantRecord) CreepScore() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// DisplayName returns the Riot ID when known, the legacy summoner name otherwise.
func (p *ParticipantRecord) DisplayName() string {
	switch {
	case p.RiotIDGameName != "" && p.RiotIDTagline != "":
		return p.RiotIDGameName + "#" + p.RiotIDTagline
	case p.RiotIDGameName != "":
		return p.RiotIDGameName
	default:
		return p.SummonerName
	}
}
