package testutil

import (
	"fmt"

	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"
)

const (
	ViewerPuuid   = "puuid-0"
	StandardQueue = 420
	ArenaQueue    = 1700
)

// NewStandardMatch returns a ranked solo match where team 100 wins.
// Participant i has puuid "puuid-<i>", the first five are on team 100.
func NewStandardMatch(matchID string) *match.MatchRecord {
	participants := make([]match.ParticipantRecord, 10)
	for i := range participants {
		teamID := 100
		if i >= 5 {
			teamID = 200
		}

		participants[i] = match.ParticipantRecord{
			Puuid:                fmt.Sprintf("puuid-%d", i),
			RiotIDGameName:       fmt.Sprintf("Player%d", i),
			RiotIDTagline:        "EUW",
			ChampionName:         "Ahri",
			ChampLevel:           16,
			TeamID:               teamID,
			Kills:                i + 1,
			Deaths:               2,
			Assists:              3,
			Item0:                3006,
			Item6:                3340,
			GoldEarned:           12000,
			TotalMinionsKilled:   180,
			NeutralMinionsKilled: 20,
			TotalDamageDealt:     (i + 1) * 10000,
			TotalDamageTaken:     20000,
			VisionScore:          25,
			Win:                  teamID == 100,
		}
	}

	return &match.MatchRecord{
		Metadata: match.Metadata{MatchID: matchID},
		Info: match.Info{
			GameDuration:     1800,
			GameEndTimestamp: 1_700_000_000_000,
			GameMode:         "CLASSIC",
			GameVersion:      "14.23.590.9183",
			PlatformID:       "EUW1",
			QueueID:          StandardQueue,
			Participants:     participants,
			Teams: []match.TeamRecord{
				{TeamID: 200, Win: false, Objectives: match.Objectives{Champion: match.Objective{Kills: 40}}},
				{TeamID: 100, Win: true, Objectives: match.Objectives{Champion: match.Objective{Kills: 20}}},
			},
		},
	}
}

// NewArenaMatch returns an Arena match of 16 players, two per placement.
// Participants 2i and 2i+1 share subteam i+1 and placement i+1.
func NewArenaMatch(matchID string) *match.MatchRecord {
	participants := make([]match.ParticipantRecord, 16)
	for i := range participants {
		placement := i/2 + 1
		participants[i] = match.ParticipantRecord{
			Puuid:            fmt.Sprintf("puuid-%d", i),
			ChampionName:     "Kog'Maw",
			PlayerSubteamID:  placement,
			Placement:        placement,
			Kills:            2,
			Deaths:           1,
			Assists:          2,
			TotalDamageDealt: 5000,
			TotalDamageTaken: 5000,
			Win:              placement == 1,
		}
	}

	return &match.MatchRecord{
		Metadata: match.Metadata{MatchID: matchID},
		Info: match.Info{
			GameDuration:     900,
			GameEndTimestamp: 1_700_000_000_000,
			GameMode:         "CHERRY",
			GameVersion:      "14.23.590.9183",
			PlatformID:       "EUW1",
			QueueID:          ArenaQueue,
			Participants:     participants,
		},
	}
}

// NewPlayerProfile returns a ranked profile with a solo and a flex entry.
func NewPlayerProfile(gameName, tagLine string) *player.PlayerProfile {
	return &player.PlayerProfile{
		Account: player.Account{Puuid: ViewerPuuid, GameName: gameName, TagLine: tagLine},
		Summoner: player.Summoner{
			ID:            "summoner-0",
			Puuid:         ViewerPuuid,
			ProfileIconID: 4568,
			SummonerLevel: 512,
		},
		Rankings: []player.RankedEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Rank: "I", LeaguePoints: 1400, Wins: 300, Losses: 200},
			{QueueType: "RANKED_FLEX_SR", Tier: "DIAMOND", Rank: "II", LeaguePoints: 40, Wins: 20, Losses: 15},
		},
	}
}

// MatchIDs returns count sequential ids starting at offset, "EUW1_<n>".
func MatchIDs(offset, count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("EUW1_%d", offset+i)
	}
	return ids
}
