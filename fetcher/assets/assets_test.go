package assets

import (
	"bytes"
	"testing"

	"leaguedash/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestChampionAssetKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "Nunu & Willump", expected: "Nunu"},
		{name: "Wukong", expected: "MonkeyKing"},
		{name: "LeBlanc", expected: "Leblanc"},
		{name: "Vel'Koz", expected: "Velkoz"},
		{name: "Cho'Gath", expected: "Chogath"},
		{name: "Kai'Sa", expected: "Kaisa"},
		{name: "Kha'Zix", expected: "Khazix"},
		{name: "Kog'Maw", expected: "KogMaw"},
		{name: "Rek'Sai", expected: "RekSai"},
		{name: "FiddleSticks", expected: "Fiddlesticks"},
		{name: "Miss Fortune", expected: "MissFortune"},
		{name: "Dr. Mundo", expected: "DrMundo"},
		{name: "Ahri", expected: "Ahri"},
		{name: "MonkeyKing", expected: "MonkeyKing"},
		// Casing variants go through the canonical table.
		{name: "KOG'MAW", expected: "KogMaw"},
		{name: "leblanc", expected: "Leblanc"},
		{name: "missfortune", expected: "MissFortune"},
		// Unknown names are stripped only.
		{name: "New Champ!", expected: "NewChamp"},
		{name: "Fíora", expected: "Fiora"},
		{name: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChampionAssetKey(tt.name))
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MF", Initials("Miss Fortune"))
	assert.Equal(t, "AH", Initials("Ahri"))
	assert.Equal(t, "KM", Initials("Kog'Maw"))
	assert.Equal(t, "I", Initials("I"))
	assert.Equal(t, "?", Initials("  "))
}

func TestItemAssetKey(t *testing.T) {
	tests := []struct {
		name     string
		itemID   int
		key      string
		equipped bool
	}{
		{name: "empty slot", itemID: 0},
		{name: "negative", itemID: -5},
		{name: "boots", itemID: 3006, key: "3006", equipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ItemAssetKey(tt.itemID)
			assert.Equal(t, tt.equipped, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.equipped, IsEquippedItem(tt.itemID))
		})
	}
}

func TestArenaTeamName(t *testing.T) {
	assert.Equal(t, "Team Poros", ArenaTeamName(1))
	assert.Equal(t, "Team Wolves", ArenaTeamName(7))
	assert.Equal(t, "Team Gromps", ArenaTeamName(8))
	assert.Equal(t, "Team 12", ArenaTeamName(12))
	assert.Equal(t, UnknownArenaTeam, ArenaTeamName(0))
	assert.Equal(t, "Team -3", ArenaTeamName(-3))
}

func TestImages(t *testing.T) {
	var buf bytes.Buffer
	images := NewImages("https://ddragon.test", "https://cdragon.test", "14.23.1", logger.NewWriterLogger(&buf))

	assert.Equal(t, "14.23.1", images.Version())
	assert.Equal(t, Image{
		URL:      "https://ddragon.test/cdn/14.23.1/img/champion/MonkeyKing.png",
		Fallback: "WU",
	}, images.Champion("Wukong"))

	assert.Equal(t, &Image{
		URL:      "https://ddragon.test/cdn/14.23.1/img/item/3006.png",
		Fallback: "3006",
	}, images.Item(3006))

	assert.Nil(t, images.Item(0))
	assert.Empty(t, buf.String())

	assert.Nil(t, images.Item(-1))
	assert.Contains(t, buf.String(), "invalid item id -1")

	assert.Equal(t, "https://ddragon.test/cdn/14.23.1/img/profileicon/4568.png", images.ProfileIcon(4568).URL)

	wolves := images.ArenaTeam(7)
	assert.Equal(t, "https://cdragon.test/latest/plugins/rcp-fe-lol-postgame/global/default/subteams/wolf.svg", wolves.URL)
	assert.Equal(t, "TW", wolves.Fallback)

	unknown := images.ArenaTeam(42)
	assert.Empty(t, unknown.URL)
	assert.Equal(t, "T4", unknown.Fallback)
}
