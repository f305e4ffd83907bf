package filters

import (
	"leaguedash/pkg/messages"
	"leaguedash/pkg/regions"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxGameNameLength = 16
	minTagLineLength  = 2
	maxTagLineLength  = 5
	maxHistoryCount   = 100
)

// URI params for the player endpoints. The riot id is "Name-Tag" or "Name#Tag".
type PlayerURIParams struct {
	Region string `uri:"region" binding:"required"`
	RiotID string `uri:"riotId" binding:"required"`
}

// Query params for the player match history.
type MatchHistoryParams struct {
	Offset int    `form:"offset,default=0"`
	Count  int    `form:"count,default=10"`
	Puuid  string `form:"puuid"`
}

// PlayerFilter identifies a player search.
type PlayerFilter struct {
	GameName string
	TagLine  string
	Region   regions.Region
}

// MatchHistoryFilter is a window of a player history.
type MatchHistoryFilter struct {
	Player *PlayerFilter
	Puuid  string
	Offset int
	Count  int
}

// NewPlayerFilter validates the player URI params.
func NewPlayerFilter(pp *PlayerURIParams) (*PlayerFilter, error) {
	region, err := regions.Parse(pp.Region)
	if err != nil {
		return nil, invalid("region", err.Error())
	}

	gameName, tagLine, err := ParseRiotID(pp.RiotID)
	if err != nil {
		return nil, err
	}

	return &PlayerFilter{
		GameName: gameName,
		TagLine:  tagLine,
		Region:   region,
	}, nil
}

// NewMatchHistoryFilter validates the history params.
func NewMatchHistoryFilter(pp *PlayerURIParams, qp *MatchHistoryParams) (*MatchHistoryFilter, error) {
	player, err := NewPlayerFilter(pp)
	if err != nil {
		return nil, err
	}

	if qp.Offset < 0 || qp.Count < 1 || qp.Count > maxHistoryCount {
		return nil, invalid("count", messages.InvalidPagination)
	}

	return &MatchHistoryFilter{
		Player: player,
		Puuid:  strings.TrimSpace(qp.Puuid),
		Offset: qp.Offset,
		Count:  qp.Count,
	}, nil
}

// ParseRiotID splits "Name#Tag" or "Name-Tag" (the URL form) and validates both parts.
// The last separator wins.
func ParseRiotID(riotID string) (gameName, tagLine string, err error) {
	idx := strings.LastIndex(riotID, "#")
	if idx < 0 {
		idx = strings.LastIndex(riotID, "-")
	}
	if idx < 0 {
		return "", "", invalid("riotId", messages.InvalidRiotID)
	}

	gameName = strings.TrimSpace(riotID[:idx])
	tagLine = strings.TrimSpace(riotID[idx+1:])

	if !validGameName(gameName) {
		return "", "", invalid("gameName", messages.InvalidGameName)
	}
	if !validTagLine(tagLine) {
		return "", "", invalid("tagLine", messages.InvalidTagLine)
	}

	return gameName, tagLine, nil
}

func validGameName(name string) bool {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > maxGameNameLength {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}

func validTagLine(tag string) bool {
	length := utf8.RuneCountInString(tag)
	if length < minTagLineLength || length > maxTagLineLength {
		return false
	}

	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
