package converters

import (
	"testing"
	"time"

	"leaguedash/api/dto"
	"leaguedash/internal/testutil"
	tiervalues "leaguedash/pkg/riotvalues/tier"

	"github.com/stretchr/testify/assert"
)

func TestCalculateKDA(t *testing.T) {
	tests := []struct {
		name                  string
		kills, deaths, assist int
		expected              dto.KDA
	}{
		{
			name:     "perfect",
			kills:    5,
			assist:   3,
			expected: dto.KDA{Value: 8, Perfect: true, Display: "Perfect", Grade: dto.GradeExcellent},
		},
		{
			name:     "assists only is still perfect",
			assist:   1,
			expected: dto.KDA{Value: 1, Perfect: true, Display: "Perfect", Grade: dto.GradeExcellent},
		},
		{
			name:     "nothing at all",
			expected: dto.KDA{Display: "0.00", Grade: dto.GradePoor},
		},
		{
			name:     "excellent",
			kills:    10,
			deaths:   2,
			assist:   5,
			expected: dto.KDA{Value: 7.5, Display: "7.50", Grade: dto.GradeExcellent},
		},
		{
			name:     "average",
			kills:    2,
			deaths:   3,
			assist:   2,
			expected: dto.KDA{Value: 4.0 / 3.0, Display: "1.33", Grade: dto.GradeAverage},
		},
		{
			name:     "poor",
			deaths:   4,
			assist:   1,
			expected: dto.KDA{Value: 0.25, Display: "0.25", Grade: dto.GradePoor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateKDA(tt.kills, tt.deaths, tt.assist))
		})
	}
}

func TestKillParticipation(t *testing.T) {
	assert.Zero(t, KillParticipation(3, 4, 0))
	assert.InDelta(t, 50.0, KillParticipation(3, 2, 10), 0.001)
	assert.InDelta(t, 100.0, KillParticipation(10, 0, 10), 0.001)
}

func TestCSPerMinute(t *testing.T) {
	assert.Zero(t, CSPerMinute(200, 0))
	assert.InDelta(t, 8.0, CSPerMinute(240, 1800), 0.001)
}

func TestPercent(t *testing.T) {
	assert.Zero(t, Percent(10, 0))
	assert.InDelta(t, 25.0, Percent(25, 100), 0.001)
}

func TestFormatGameDuration(t *testing.T) {
	assert.Equal(t, "25m 43s", FormatGameDuration(1543))
	assert.Equal(t, "0m 0s", FormatGameDuration(-5))
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{ago: 30 * time.Second, expected: "Just now"},
		{ago: 5 * time.Minute, expected: "5m ago"},
		{ago: 3 * time.Hour, expected: "3h ago"},
		{ago: 4 * 24 * time.Hour, expected: "4d ago"},
		{ago: 65 * 24 * time.Hour, expected: "2mo ago"},
		{ago: -time.Minute, expected: "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeAgo(now.Add(-tt.ago), now))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1.5K", FormatNumber(1500))
	assert.Equal(t, "2.3M", FormatNumber(2_300_000))
}

func TestConvertPlayer(t *testing.T) {
	profile := testutil.NewPlayerProfile("Faker", "T1")

	view := ConvertPlayer(profile, "KR")

	assert.Equal(t, "Faker#T1", view.RiotID)
	assert.Equal(t, "KR", view.Region)
	assert.Len(t, view.Rating, 2)
	assert.Equal(t, "Ranked Solo/Duo", view.Rating[0].Queue)
	assert.Equal(t, "Challenger", view.Rating[0].Display)
	assert.Equal(t, "Diamond II", view.Rating[1].Display)

	wins, losses := profile.TotalGames()
	assert.Equal(t, wins, view.Ranked.Wins)
	assert.Equal(t, losses, view.Ranked.Losses)
	assert.Equal(t, 320, view.Ranked.Wins)
	assert.Equal(t, 215, view.Ranked.Losses)

	if assert.NotNil(t, view.Ranked.Best) {
		assert.Equal(t, "RANKED_SOLO_5x5", view.Ranked.Best.QueueType)
	}
	// (91400 + 65040) / 2 rates as Master.
	assert.Equal(t, "MASTER", view.Ranked.Average)
}

func TestSummarizeRankingsAverage(t *testing.T) {
	summary := SummarizeRankings([]dto.RatingInfo{
		{Rating: tiervalues.CalculateRank("GOLD", "I", 50)},
		{Rating: tiervalues.CalculateRank("GOLD", "III", 10)},
	})
	assert.Equal(t, "GOLD II", summary.Average)
}

func TestConvertPlayerUnranked(t *testing.T) {
	profile := testutil.NewPlayerProfile("Someone", "EUW")
	profile.Rankings = nil

	view := ConvertPlayer(profile, "EUW")
	assert.Empty(t, view.Rating)
	assert.Nil(t, view.Ranked.Best)
	assert.Zero(t, view.Ranked.WinRate)
	assert.Empty(t, view.Ranked.Average)
}
