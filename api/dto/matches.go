package dto

import (
	"time"

	"leaguedash/fetcher/assets"
	"leaguedash/pkg/models/match"
	queuevalues "leaguedash/pkg/riotvalues/queue"
)

// MatchMode selects how participants are grouped.
type MatchMode string

const (
	ModeStandard MatchMode = "standard"
	ModeArena    MatchMode = "arena"
)

// KDAGrade is the color bucket of a KDA.
type KDAGrade string

const (
	GradeExcellent KDAGrade = "excellent"
	GradeGood      KDAGrade = "good"
	GradeAverage   KDAGrade = "average"
	GradePoor      KDAGrade = "poor"
)

// KDA is the (kills+assists)/deaths ratio. Perfect is set when there were no deaths
// but at least one takedown, Value then holds the takedowns.
type KDA struct {
	Value   float64  `json:"value"`
	Perfect bool     `json:"perfect"`
	Display string   `json:"display"`
	Grade   KDAGrade `json:"grade"`
}

// ParticipantStats is a participant with every derived stat of the match views.
type ParticipantStats struct {
	Puuid        string `json:"puuid"`
	Name         string `json:"name"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ChampionKey  string `json:"championKey"`
	ChampLevel   int    `json:"champLevel"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition,omitempty"`
	Placement    int    `json:"placement,omitempty"`
	SubteamID    int    `json:"subteamId,omitempty"`

	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	KDA               KDA     `json:"kda"`
	CS                int     `json:"cs"`
	CSPerMinute       float64 `json:"csPerMinute"`
	KillParticipation float64 `json:"killParticipation"`
	Gold              int     `json:"gold"`
	GoldText          string  `json:"goldText"`
	VisionScore       int     `json:"visionScore"`

	DamageDealt        int     `json:"damageDealt"`
	DamageDealtPercent float64 `json:"damageDealtPercent"`
	DamageTaken        int     `json:"damageTaken"`
	DamageTakenPercent float64 `json:"damageTakenPercent"`

	Items []int `json:"items"`
	Win   bool  `json:"win"`

	IsViewer bool `json:"isViewer"`

	ChampionImage *assets.Image   `json:"championImage,omitempty"`
	ItemImages    []*assets.Image `json:"itemImages,omitempty"`
}

// TeamView is one side of a standard match, participants in backend order.
type TeamView struct {
	TeamID       int                 `json:"teamId"`
	Win          bool                `json:"win"`
	Kills        int                 `json:"kills"`
	Objectives   *match.Objectives   `json:"objectives,omitempty"`
	Participants []*ParticipantStats `json:"participants"`
}

// ArenaGroup is the subteam that finished at a placement.
type ArenaGroup struct {
	Placement    int                 `json:"placement"`
	SubteamID    int                 `json:"subteamId"`
	TeamName     string              `json:"teamName"`
	TeamImage    *assets.Image       `json:"teamImage,omitempty"`
	Kills        int                 `json:"kills"`
	Win          bool                `json:"win"`
	Participants []*ParticipantStats `json:"participants"`
}

// MatchView is a match aggregated for one viewer.
type MatchView struct {
	MatchID      string                     `json:"matchId"`
	Queue        queuevalues.Classification `json:"queue"`
	Mode         MatchMode                  `json:"mode"`
	GameMode     string                     `json:"gameMode"`
	GameVersion  string                     `json:"gameVersion"`
	AssetVersion string                     `json:"assetVersion,omitempty"`
	Platform     string                     `json:"platform"`
	Duration     int                        `json:"duration"`
	DurationText string                     `json:"durationText"`
	EndedAt      time.Time                  `json:"endedAt"`
	TimeAgo      string                     `json:"timeAgo,omitempty"`

	Viewer *ParticipantStats `json:"viewer"`

	// Teams is set for standard matches, Placements for Arena.
	Teams      []*TeamView   `json:"teams,omitempty"`
	Placements []*ArenaGroup `json:"placements,omitempty"`
}

// MatchSummary is the compact history entry of a match, viewer only.
type MatchSummary struct {
	MatchID      string                     `json:"matchId"`
	Queue        queuevalues.Classification `json:"queue"`
	Mode         MatchMode                  `json:"mode"`
	Duration     int                        `json:"duration"`
	DurationText string                     `json:"durationText"`
	EndedAt      time.Time                  `json:"endedAt"`
	TimeAgo      string                     `json:"timeAgo"`
	Win          bool                       `json:"win"`
	Placement    int                        `json:"placement,omitempty"`
	Viewer       *ParticipantStats          `json:"viewer"`
}

// HistoryEntry is a match of a history page. A failed entry has no summary.
type HistoryEntry struct {
	MatchID   string        `json:"matchId"`
	Summary   *MatchSummary `json:"summary,omitempty"`
	Error     string        `json:"error,omitempty"`
	Retryable bool          `json:"retryable,omitempty"`
}

// MatchHistoryPage is one "load more" window of a player history.
type MatchHistoryPage struct {
	Puuid      string          `json:"puuid"`
	Offset     int             `json:"offset"`
	Count      int             `json:"count"`
	Entries    []*HistoryEntry `json:"entries"`
	NextOffset int             `json:"nextOffset"`
	HasMore    bool            `json:"hasMore"`
}

// Failed returns how many entries couldn't be loaded.
func (p *MatchHistoryPage) Failed() int {
	failed := 0
	for _, e := range p.Entries {
		if e.Summary == nil {
			failed++
		}
	}
	return failed
}
