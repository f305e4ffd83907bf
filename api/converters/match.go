package converters

import (
	"errors"
	"fmt"
	"leaguedash/api/dto"
	"leaguedash/fetcher/assets"
	"leaguedash/pkg/models/match"
	queuevalues "leaguedash/pkg/riotvalues/queue"
	"slices"
	"time"
)

const arenaLastPlacement = 8

var (
	ErrParticipantNotFound = errors.New("participant not found in match")
	ErrNoMatch             = errors.New("no match provided")
)

// Aggregate builds the view of a match for the participant with viewerPuuid.
// Arena queues are grouped by placement, every other queue by team.
func Aggregate(m *match.MatchRecord, viewerPuuid string) (*dto.MatchView, error) {
	if m == nil {
		return nil, ErrNoMatch
	}

	if _, ok := m.Participant(viewerPuuid); !ok {
		return nil, fmt.Errorf("%s: %w", m.MatchID(), ErrParticipantNotFound)
	}

	queue := queuevalues.Classify(m.Info.QueueID)
	view := &dto.MatchView{
		MatchID:      m.MatchID(),
		Queue:        queue,
		GameMode:     queuevalues.GameModeName(m.Info.GameMode),
		GameVersion:  m.Info.GameVersion,
		Platform:     m.Info.PlatformID,
		Duration:     m.Info.GameDuration,
		DurationText: FormatGameDuration(m.Info.GameDuration),
		EndedAt:      m.EndedAt().UTC(),
	}

	stats := make([]*dto.ParticipantStats, len(m.Info.Participants))
	for i := range m.Info.Participants {
		stats[i] = NewParticipantStats(&m.Info.Participants[i], m.Info.GameDuration)
		if stats[i].Puuid == viewerPuuid {
			stats[i].IsViewer = true
			view.Viewer = stats[i]
		}
	}
	ApplyDamageBars(stats)

	if queue.IsArena {
		view.Mode = dto.ModeArena
		view.Placements = groupArena(m.Info.Participants, stats)
	} else {
		view.Mode = dto.ModeStandard
		view.Teams = groupStandard(m, stats)
	}

	return view, nil
}

// groupStandard partitions participants by team, keeping the backend order inside each team.
func groupStandard(m *match.MatchRecord, stats []*dto.ParticipantStats) []*dto.TeamView {
	teams := make(map[int]*dto.TeamView)
	for _, s := range stats {
		team, ok := teams[s.TeamID]
		if !ok {
			team = &dto.TeamView{TeamID: s.TeamID, Win: s.Win}
			teams[s.TeamID] = team
		}
		team.Participants = append(team.Participants, s)
	}

	result := make([]*dto.TeamView, 0, len(teams))
	for _, team := range teams {
		if record, ok := m.Team(team.TeamID); ok {
			objectives := record.Objectives
			team.Objectives = &objectives
			team.Kills = record.Objectives.Champion.Kills
			team.Win = record.Win
			for _, s := range team.Participants {
				s.Win = record.Win
			}
		} else {
			team.Kills = sumKills(team.Participants)
		}

		for _, s := range team.Participants {
			s.KillParticipation = KillParticipation(s.Kills, s.Assists, team.Kills)
		}
		result = append(result, team)
	}

	slices.SortFunc(result, func(a, b *dto.TeamView) int {
		return a.TeamID - b.TeamID
	})

	return result
}

// groupArena groups participants by placement. A missing placement is treated as last.
func groupArena(participants []match.ParticipantRecord, stats []*dto.ParticipantStats) []*dto.ArenaGroup {
	groups := make(map[int]*dto.ArenaGroup)
	for i, s := range stats {
		placement := ArenaPlacement(participants[i].Placement)
		s.Placement = placement
		s.Win = placement == 1

		group, ok := groups[placement]
		if !ok {
			group = &dto.ArenaGroup{
				Placement: placement,
				SubteamID: s.SubteamID,
				TeamName:  assets.ArenaTeamName(s.SubteamID),
				Win:       placement == 1,
			}
			groups[placement] = group
		}
		group.Participants = append(group.Participants, s)
	}

	result := make([]*dto.ArenaGroup, 0, len(groups))
	for _, group := range groups {
		group.Kills = sumKills(group.Participants)
		for _, s := range group.Participants {
			s.KillParticipation = KillParticipation(s.Kills, s.Assists, group.Kills)
		}
		result = append(result, group)
	}

	slices.SortFunc(result, func(a, b *dto.ArenaGroup) int {
		return a.Placement - b.Placement
	})

	return result
}

// ArenaPlacement returns the placement used for grouping, 8 when missing or out of range.
func ArenaPlacement(placement int) int {
	if placement < 1 || placement > arenaLastPlacement {
		return arenaLastPlacement
	}
	return placement
}

// ApplyDamageBars sets the dealt and taken damage of every participant as a
// percentage of the highest value in the match.
func ApplyDamageBars(stats []*dto.ParticipantStats) {
	maxDealt, maxTaken := 0, 0
	for _, s := range stats {
		maxDealt = max(maxDealt, s.DamageDealt)
		maxTaken = max(maxTaken, s.DamageTaken)
	}

	for _, s := range stats {
		s.DamageDealtPercent = Percent(s.DamageDealt, maxDealt)
		s.DamageTakenPercent = Percent(s.DamageTaken, maxTaken)
	}
}

// Summarize reduces a view to its history entry.
func Summarize(view *dto.MatchView, now time.Time) *dto.MatchSummary {
	summary := &dto.MatchSummary{
		MatchID:      view.MatchID,
		Queue:        view.Queue,
		Mode:         view.Mode,
		Duration:     view.Duration,
		DurationText: view.DurationText,
		EndedAt:      view.EndedAt,
		TimeAgo:      FormatTimeAgo(view.EndedAt, now),
		Viewer:       view.Viewer,
	}

	if view.Viewer != nil {
		summary.Win = view.Viewer.Win
		if view.Mode == dto.ModeArena {
			summary.Placement = view.Viewer.Placement
		}
	}

	return summary
}

func sumKills(stats []*dto.ParticipantStats) int {
	kills := 0
	for _, s := range stats {
		kills += s.Kills
	}
	return kills
}
