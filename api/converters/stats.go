package converters

import (
	"fmt"
	"leaguedash/api/dto"
	"leaguedash/fetcher/assets"
	"leaguedash/pkg/models/match"
)

// Perfect KDAs are graded as this ratio.
const perfectKDAGrade = 10

// NewParticipantStats computes the stats that only depend on the participant.
// Kill participation and damage bars need the rest of the match.
func NewParticipantStats(p *match.ParticipantRecord, durationSeconds int) *dto.ParticipantStats {
	items := p.Items()

	return &dto.ParticipantStats{
		Puuid:        p.Puuid,
		Name:         p.DisplayName(),
		ChampionID:   p.ChampionID,
		ChampionName: p.ChampionName,
		ChampionKey:  assets.ChampionAssetKey(p.ChampionName),
		ChampLevel:   p.ChampLevel,
		TeamID:       p.TeamID,
		TeamPosition: p.TeamPosition,
		Placement:    p.Placement,
		SubteamID:    p.PlayerSubteamID,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		KDA:          CalculateKDA(p.Kills, p.Deaths, p.Assists),
		CS:           p.CreepScore(),
		CSPerMinute:  CSPerMinute(p.CreepScore(), durationSeconds),
		Gold:         p.GoldEarned,
		GoldText:     FormatNumber(p.GoldEarned),
		VisionScore:  p.VisionScore,
		DamageDealt:  p.TotalDamageDealt,
		DamageTaken:  p.TotalDamageTaken,
		Items:        items[:],
		Win:          p.Win,
	}
}

// CalculateKDA returns (kills+assists)/deaths. With no deaths the KDA is Perfect
// when there was any takedown and 0 otherwise.
func CalculateKDA(kills, deaths, assists int) dto.KDA {
	takedowns := kills + assists

	if deaths == 0 {
		if takedowns > 0 {
			return dto.KDA{
				Value:   float64(takedowns),
				Perfect: true,
				Display: "Perfect",
				Grade:   gradeKDA(perfectKDAGrade),
			}
		}
		return dto.KDA{Display: "0.00", Grade: dto.GradePoor}
	}

	value := float64(takedowns) / float64(deaths)
	return dto.KDA{
		Value:   value,
		Display: fmt.Sprintf("%.2f", value),
		Grade:   gradeKDA(value),
	}
}

func gradeKDA(value float64) dto.KDAGrade {
	switch {
	case value >= 3:
		return dto.GradeExcellent
	case value >= 2:
		return dto.GradeGood
	case value >= 1:
		return dto.GradeAverage
	default:
		return dto.GradePoor
	}
}

// CSPerMinute returns the creep score per minute, 0 for a game without duration.
func CSPerMinute(cs, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(cs) / (float64(durationSeconds) / 60)
}

// KillParticipation returns the share of the team kills the participant took part in, as a percentage.
func KillParticipation(kills, assists, teamKills int) float64 {
	if teamKills <= 0 {
		return 0
	}
	return float64(kills+assists) / float64(teamKills) * 100
}

// Percent returns value as a percentage of total, 0 when total is 0.
func Percent(value, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}
