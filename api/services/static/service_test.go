package staticservice

import (
	"testing"

	mocks "leaguedash/api/services/testutil"

	"github.com/stretchr/testify/assert"
)

func TestGetAssetVersion(t *testing.T) {
	tests := []struct {
		name        string
		gameVersion string
		resolved    string
		fromGame    bool
	}{
		{name: "game version", gameVersion: "14.23.590.9183", resolved: "14.23.1", fromGame: true},
		{name: "empty", gameVersion: "", resolved: "15.13.1"},
		{name: "malformed", gameVersion: "patch", resolved: "15.13.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mocks.MockVersionResolver)
			resolver.On("Latest").Return("15.13.1")
			resolver.On("Resolve", tt.gameVersion).Return(tt.resolved)

			service := NewStaticService(&StaticServiceDeps{Resolver: resolver})
			version := service.GetAssetVersion(tt.gameVersion)

			assert.Equal(t, tt.resolved, version.Version)
			assert.Equal(t, "15.13.1", version.Latest)
			assert.Equal(t, tt.fromGame, version.FromGame)
			resolver.AssertExpectations(t)
		})
	}
}

func TestClassifyQueue(t *testing.T) {
	service := NewStaticService(&StaticServiceDeps{})

	arena := service.ClassifyQueue(1700)
	assert.True(t, arena.IsArena)
	assert.Equal(t, 1700, arena.QueueID)

	unknown := service.ClassifyQueue(-5)
	assert.True(t, unknown.IsSpecialMode)
}
