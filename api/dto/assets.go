package dto

// AssetVersion is the Data Dragon version used for a game version.
type AssetVersion struct {
	GameVersion string `json:"gameVersion,omitempty"`
	Version     string `json:"version"`
	Latest      string `json:"latest"`
	FromGame    bool   `json:"fromGame"`
}
