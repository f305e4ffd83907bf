package dto

import (
	"leaguedash/fetcher/assets"
	"leaguedash/pkg/models/player"
)

// PlayerView is the DTO of a player search.
type PlayerView struct {
	Puuid         string        `json:"puuid"`
	GameName      string        `json:"gameName"`
	TagLine       string        `json:"tagLine"`
	RiotID        string        `json:"riotId"`
	Region        string        `json:"region"`
	ProfileIconID int           `json:"profileIconId"`
	ProfileIcon   *assets.Image `json:"profileIcon,omitempty"`
	SummonerLevel int           `json:"summonerLevel"`
	Rating        []RatingInfo  `json:"rating"`
	Ranked        RankedSummary `json:"ranked"`
}

// RatingInfo contains a player rating information for a given queue.
type RatingInfo struct {
	QueueType    string             `json:"queueType"`
	Queue        string             `json:"queue"`
	Tier         string             `json:"tier"`
	Rank         string             `json:"rank"`
	Display      string             `json:"display"`
	LeaguePoints int                `json:"lp"`
	Wins         int                `json:"wins"`
	Losses       int                `json:"losses"`
	WinRate      float64            `json:"winRate"`
	Rating       int                `json:"rating"`
	HotStreak    bool               `json:"hotStreak"`
	Veteran      bool               `json:"veteran"`
	FreshBlood   bool               `json:"freshBlood"`
	Inactive     bool               `json:"inactive"`
	MiniSeries   *player.MiniSeries `json:"miniSeries,omitempty"`
}

// RankedSummary sums every ranked entry of a player.
type RankedSummary struct {
	Wins    int         `json:"wins"`
	Losses  int         `json:"losses"`
	WinRate float64     `json:"winRate"`
	Best    *RatingInfo `json:"best,omitempty"`
	Average string      `json:"average,omitempty"`
}

// RankingsView is the ranked standing of a player, without the account data.
type RankingsView struct {
	Puuid  string        `json:"puuid"`
	Region string        `json:"region"`
	Rating []RatingInfo  `json:"rating"`
	Ranked RankedSummary `json:"ranked"`
}
