package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "faker#kr1@KR", CacheKey(" Faker ", "KR1", "kr"))
	assert.Equal(t, CacheKey("faker", "kr1", "KR"), CacheKey("FAKER", "Kr1", "Kr"))
}

func TestTotalGames(t *testing.T) {
	p := &PlayerProfile{Rankings: []RankedEntry{
		{QueueType: "RANKED_SOLO_5x5", Wins: 10, Losses: 5},
		{QueueType: "RANKED_FLEX_SR", Wins: 3, Losses: 4},
	}}

	wins, losses := p.TotalGames()
	assert.Equal(t, 13, wins)
	assert.Equal(t, 9, losses)

	wins, losses = (&PlayerProfile{}).TotalGames()
	assert.Zero(t, wins)
	assert.Zero(t, losses)
}

func TestRiotID(t *testing.T) {
	assert.Equal(t, "Faker#KR1", Account{GameName: "Faker", TagLine: "KR1"}.RiotID())
}
