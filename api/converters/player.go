package converters

import (
	"leaguedash/api/dto"
	"leaguedash/pkg/models/player"
	queuevalues "leaguedash/pkg/riotvalues/queue"
	tiervalues "leaguedash/pkg/riotvalues/tier"
)

// ConvertPlayer builds the search result of a profile.
func ConvertPlayer(profile *player.PlayerProfile, region string) *dto.PlayerView {
	view := &dto.PlayerView{
		Puuid:         profile.Account.Puuid,
		GameName:      profile.Account.GameName,
		TagLine:       profile.Account.TagLine,
		RiotID:        profile.Account.RiotID(),
		Region:        region,
		ProfileIconID: profile.Summoner.ProfileIconID,
		SummonerLevel: profile.Summoner.SummonerLevel,
		Rating:        make([]dto.RatingInfo, 0, len(profile.Rankings)),
	}

	for _, entry := range profile.Rankings {
		view.Rating = append(view.Rating, ConvertRankedEntry(entry))
	}

	view.Ranked = SummarizeRankings(view.Rating)
	return view
}

// ConvertRankedEntry converts one ranked queue standing.
func ConvertRankedEntry(entry player.RankedEntry) dto.RatingInfo {
	return dto.RatingInfo{
		QueueType:    entry.QueueType,
		Queue:        queuevalues.RankedQueueLabel(entry.QueueType),
		Tier:         entry.Tier,
		Rank:         entry.Rank,
		Display:      tiervalues.DisplayName(entry.Tier, entry.Rank),
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		WinRate:      tiervalues.WinRate(entry.Wins, entry.Losses),
		Rating:       tiervalues.CalculateRank(entry.Tier, entry.Rank, entry.LeaguePoints),
		HotStreak:    entry.HotStreak,
		Veteran:      entry.Veteran,
		FreshBlood:   entry.FreshBlood,
		Inactive:     entry.Inactive,
		MiniSeries:   entry.MiniSeries,
	}
}

// SummarizeRankings sums wins and losses of every entry, picks the highest rated one
// and names the tier of the mean rating.
func SummarizeRankings(ratings []dto.RatingInfo) dto.RankedSummary {
	var summary dto.RankedSummary

	total := 0
	for i := range ratings {
		summary.Wins += ratings[i].Wins
		summary.Losses += ratings[i].Losses
		total += ratings[i].Rating

		if summary.Best == nil || ratings[i].Rating > summary.Best.Rating {
			summary.Best = &ratings[i]
		}
	}

	summary.WinRate = tiervalues.WinRate(summary.Wins, summary.Losses)
	if len(ratings) > 0 {
		summary.Average = tiervalues.CalculateInverseRank(total / len(ratings))
	}
	return summary
}
