package converters

import (
	"leaguedash/api/dto"
	"leaguedash/fetcher/assets"
)

// AttachImages fills the image URLs of a match view.
func AttachImages(view *dto.MatchView, images *assets.Images) {
	view.AssetVersion = images.Version()

	for _, team := range view.Teams {
		for _, s := range team.Participants {
			attachParticipantImages(s, images)
		}
	}

	for _, group := range view.Placements {
		teamImage := images.ArenaTeam(group.SubteamID)
		group.TeamImage = &teamImage
		for _, s := range group.Participants {
			attachParticipantImages(s, images)
		}
	}
}

// AttachPlayerImages sets the profile icon of a player.
func AttachPlayerImages(view *dto.PlayerView, images *assets.Images) {
	icon := images.ProfileIcon(view.ProfileIconID)
	view.ProfileIcon = &icon
}

func attachParticipantImages(s *dto.ParticipantStats, images *assets.Images) {
	champion := images.Champion(s.ChampionName)
	s.ChampionImage = &champion

	s.ItemImages = make([]*assets.Image, len(s.Items))
	for i, itemID := range s.Items {
		s.ItemImages[i] = images.Item(itemID)
	}
}
