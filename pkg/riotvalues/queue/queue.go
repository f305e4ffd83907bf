package queuevalues

import "strings"

// Queue display name and map.
type Queue struct {
	Name string
	Map  string
}

// Icon is the category used to pick a queue icon.
type Icon string

const (
	IconRankedSolo Icon = "ranked-solo"
	IconRankedFlex Icon = "ranked-flex"
	IconRanked     Icon = "ranked"
	IconAram       Icon = "aram"
	IconURF        Icon = "urf"
	IconArena      Icon = "arena"
	IconClash      Icon = "clash"
	IconTutorial   Icon = "tutorial"
	IconBots       Icon = "bots"
	IconCustom     Icon = "custom"
	IconGeneric    Icon = "generic"
)

var iconEmoji = map[Icon]string{
	IconRankedSolo: "👤",
	IconRankedFlex: "👥",
	IconRanked:     "🏆",
	IconAram:       "❄️",
	IconURF:        "⚡️",
	IconArena:      "⚔️",
	IconClash:      "🥇",
	IconTutorial:   "📚",
	IconBots:       "🤖",
	IconCustom:     "🛠️",
	IconGeneric:    "🎮",
}

// Emoji returns the emoji rendering of the icon.
func (i Icon) Emoji() string {
	if e, ok := iconEmoji[i]; ok {
		return e
	}
	return iconEmoji[IconGeneric]
}

// Classification is everything the views need to know about a queue.
type Classification struct {
	QueueID       int    `json:"queueId"`
	DisplayName   string `json:"displayName"`
	Map           string `json:"map"`
	IsRanked      bool   `json:"isRanked"`
	IsNormal      bool   `json:"isNormal"`
	IsSpecialMode bool   `json:"isSpecialMode"`
	IsArena       bool   `json:"isArena"`
	Icon          Icon   `json:"icon"`
	Emoji         string `json:"emoji"`

	// RankedQueueType links a ranked match to the RankedEntry of the same queue.
	RankedQueueType string `json:"rankedQueueType,omitempty"`
}

// Unknown is returned for queue ids missing from the table.
var Unknown = Queue{Name: "Unknown Queue", Map: "Unknown Map"}

// ArenaQueues are the queues that use placements instead of two teams.
var ArenaQueues = []int{1700, 1710}

// rankedQueueTypes maps the ranked queue ids to the queueType of their ranked entries.
var rankedQueueTypes = map[int]string{
	420: "RANKED_SOLO_5x5",
	440: "RANKED_FLEX_SR",
	470: "RANKED_FLEX_TT",
}

var rankedQueueLabels = map[string]string{
	"RANKED_SOLO_5x5": "Ranked Solo/Duo",
	"RANKED_FLEX_SR":  "Ranked Flex",
	"RANKED_FLEX_TT":  "Ranked Flex 3v3",
}

// Lookup returns the table entry of a queue, or Unknown.
func Lookup(queueID int) Queue {
	if q, ok := queueTable[queueID]; ok {
		return q
	}
	return Unknown
}

// Classify maps a queue id to its display metadata. Unknown ids are special modes.
func Classify(queueID int) Classification {
	q := Lookup(queueID)
	name := strings.ToLower(q.Name)

	isRanked := strings.Contains(name, "ranked")
	isNormal := !isRanked && containsAny(name, "blind", "draft", "normal", "quickplay")
	icon := iconFor(name)

	return Classification{
		QueueID:         queueID,
		DisplayName:     q.Name,
		Map:             q.Map,
		IsRanked:        isRanked,
		IsNormal:        isNormal,
		IsSpecialMode:   !isRanked && !isNormal,
		IsArena:         IsArena(queueID),
		Icon:            icon,
		Emoji:           icon.Emoji(),
		RankedQueueType: rankedQueueTypes[queueID],
	}
}

// IsArena reports whether the queue is an Arena queue.
func IsArena(queueID int) bool {
	for _, id := range ArenaQueues {
		if id == queueID {
			return true
		}
	}
	return false
}

// RankedQueueLabel returns the display label of a ranked queue type.
// Unknown types are returned unchanged.
func RankedQueueLabel(queueType string) string {
	if label, ok := rankedQueueLabels[queueType]; ok {
		return label
	}
	return queueType
}

// GameModeName returns the display name of an info.gameMode value.
func GameModeName(gameMode string) string {
	if name, ok := gameModeNames[gameMode]; ok {
		return name
	}
	return gameMode
}

// The order of the checks matters, "ARAM Clash" is an aram icon.
func iconFor(name string) Icon {
	if strings.Contains(name, "ranked") {
		switch {
		case strings.Contains(name, "solo"):
			return IconRankedSolo
		case strings.Contains(name, "flex"):
			return IconRankedFlex
		default:
			return IconRanked
		}
	}

	switch {
	case strings.Contains(name, "aram"):
		return IconAram
	case strings.Contains(name, "urf"):
		return IconURF
	case strings.Contains(name, "arena"):
		return IconArena
	case strings.Contains(name, "clash"):
		return IconClash
	case strings.Contains(name, "tutorial"):
		return IconTutorial
	case containsAny(name, "co-op", "bot"):
		return IconBots
	case strings.Contains(name, "custom"):
		return IconCustom
	}

	return IconGeneric
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
