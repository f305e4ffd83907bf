package assets

import (
	"fmt"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/messages"
	"strconv"
)

// Image is an asset URL with the text shown when it fails to load.
type Image struct {
	URL      string `json:"url,omitempty"`
	Fallback string `json:"fallback"`
}

// Images builds asset URLs for one Data Dragon version.
type Images struct {
	ddragonURL string
	cdragonURL string
	version    string
	logger     *logger.Logger
}

// NewImages creates a builder. Base URLs have no trailing slash.
func NewImages(ddragonURL, cdragonURL, version string, log *logger.Logger) *Images {
	return &Images{
		ddragonURL: ddragonURL,
		cdragonURL: cdragonURL,
		version:    version,
		logger:     log,
	}
}

// Version returns the Data Dragon version used in the URLs.
func (i *Images) Version() string {
	return i.version
}

// Champion returns the square portrait of a champion.
func (i *Images) Champion(name string) Image {
	img := Image{Fallback: Initials(name)}
	if key := ChampionAssetKey(name); key != "" {
		img.URL = fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", i.ddragonURL, i.version, key)
	}
	return img
}

// Item returns the icon of an item, nil for empty slots.
// Negative ids are reported on the log and treated as empty.
func (i *Images) Item(itemID int) *Image {
	key, ok := ItemAssetKey(itemID)
	if !ok {
		if itemID < 0 {
			i.logger.Warnf(messages.InvalidItemIDMsg, itemID)
		}
		return nil
	}

	return &Image{
		URL:      fmt.Sprintf("%s/cdn/%s/img/item/%s.png", i.ddragonURL, i.version, key),
		Fallback: key,
	}
}

// ProfileIcon returns a summoner profile icon.
func (i *Images) ProfileIcon(iconID int) Image {
	id := strconv.Itoa(iconID)
	return Image{
		URL:      fmt.Sprintf("%s/cdn/%s/img/profileicon/%s.png", i.ddragonURL, i.version, id),
		Fallback: id,
	}
}

// ArenaTeam returns the emblem of an Arena subteam, without URL for unknown ids.
func (i *Images) ArenaTeam(subteamID int) Image {
	img := Image{Fallback: Initials(ArenaTeamName(subteamID))}
	if name, ok := arenaTeamImage(subteamID); ok {
		img.URL = fmt.Sprintf("%s/latest/plugins/rcp-fe-lol-postgame/global/default/subteams/%s.svg", i.cdragonURL, name)
	}
	return img
}
