package regions

import (
	"fmt"
	"leaguedash/pkg/messages"
	"slices"
	"strings"
)

// Create the types for clarity.
type (
	// Region is the user facing code, as accepted by the backend (EUW, NA...).
	Region string
	// MainRegion is the regional routing value used for account and match data.
	MainRegion string
	// SubRegion is the platform id used for summoner and league data.
	SubRegion string
)

type regionInfo struct {
	platform SubRegion
	routing  MainRegion
}

var regionTable = map[Region]regionInfo{
	"EUW":  {platform: "EUW1", routing: "EUROPE"},
	"EUNE": {platform: "EUN1", routing: "EUROPE"},
	"TR":   {platform: "TR1", routing: "EUROPE"},
	"RU":   {platform: "RU", routing: "EUROPE"},
	"ME":   {platform: "ME1", routing: "EUROPE"},
	"NA":   {platform: "NA1", routing: "AMERICAS"},
	"BR":   {platform: "BR1", routing: "AMERICAS"},
	"LAN":  {platform: "LA1", routing: "AMERICAS"},
	"LAS":  {platform: "LA2", routing: "AMERICAS"},
	"KR":   {platform: "KR", routing: "ASIA"},
	"JP":   {platform: "JP1", routing: "ASIA"},
	"OCE":  {platform: "OC1", routing: "SEA"},
	"SG":   {platform: "SG2", routing: "SEA"},
	"TW":   {platform: "TW2", routing: "SEA"},
	"VN":   {platform: "VN2", routing: "SEA"},
}

// DefaultRegion is used when a request omits the region.
const DefaultRegion Region = "EUW"

// Parse normalizes a region code and checks that it is supported.
// Platform ids (EUW1, LA2...) are accepted too.
func Parse(value string) (Region, error) {
	code := Region(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := regionTable[code]; ok {
		return code, nil
	}

	for region, info := range regionTable {
		if SubRegion(code) == info.platform {
			return region, nil
		}
	}

	return "", fmt.Errorf(messages.InvalidRegion, value)
}

// Platform returns the platform id of the region.
func (r Region) Platform() SubRegion {
	return regionTable[r].platform
}

// Routing returns the regional routing value of the region.
func (r Region) Routing() MainRegion {
	return regionTable[r].routing
}

// List returns every supported region sorted by name.
func List() []Region {
	list := make([]Region, 0, len(regionTable))
	for r := range regionTable {
		list = append(list, r)
	}
	slices.Sort(list)
	return list
}

// RegionList groups the platforms by routing value.
func RegionList() map[MainRegion][]SubRegion {
	result := make(map[MainRegion][]SubRegion)
	for _, r := range List() {
		info := regionTable[r]
		result[info.routing] = append(result[info.routing], info.platform)
	}
	return result
}
