package assets

import (
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

// Display names whose Data Dragon key isn't the stripped name, as the backend sends them.
var championAliases = map[string]string{
	"Nunu & Willump": "Nunu",
	"Wukong":         "MonkeyKing",
	"LeBlanc":        "Leblanc",
	"Vel'Koz":        "Velkoz",
	"Cho'Gath":       "Chogath",
	"Kai'Sa":         "Kaisa",
	"Kha'Zix":        "Khazix",
	"Kog'Maw":        "KogMaw",
	"Rek'Sai":        "RekSai",
	"FiddleSticks":   "Fiddlesticks",
	"Bel'Veth":       "Belveth",
	"Renata Glasc":   "Renata",
	"K'Sante":        "KSante",
}

// Canonical (lower case, letters and digits only) forms mapped to their key.
// Covers casing variants such as "KOGMAW" or "leblanc".
var canonicalChampions = map[string]string{
	"nunuwillump":  "Nunu",
	"nunu":         "Nunu",
	"wukong":       "MonkeyKing",
	"monkeyking":   "MonkeyKing",
	"leblanc":      "Leblanc",
	"velkoz":       "Velkoz",
	"chogath":      "Chogath",
	"kaisa":        "Kaisa",
	"khazix":       "Khazix",
	"kogmaw":       "KogMaw",
	"reksai":       "RekSai",
	"fiddlesticks": "Fiddlesticks",
	"belveth":      "Belveth",
	"renataglasc":  "Renata",
	"renata":       "Renata",
	"ksante":       "KSante",
	"drmundo":      "DrMundo",
	"jarvaniv":     "JarvanIV",
	"masteryi":     "MasterYi",
	"missfortune":  "MissFortune",
	"tahmkench":    "TahmKench",
	"twistedfate":  "TwistedFate",
	"xinzhao":      "XinZhao",
	"aurelionsol":  "AurelionSol",
	"leesin":       "LeeSin",
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ChampionAssetKey converts a champion display name to its Data Dragon image key.
// Lookup order is the literal alias table, then the case insensitive canonical
// table, then the name with every non alphanumeric character removed.
func ChampionAssetKey(name string) string {
	if key, ok := championAliases[name]; ok {
		return key
	}

	stripped := nonAlphanumeric.ReplaceAllString(unidecode.Unidecode(name), "")
	if key, ok := canonicalChampions[strings.ToLower(stripped)]; ok {
		return key
	}

	return stripped
}

// Initials returns up to two letters used when a champion or player image can't be shown.
func Initials(name string) string {
	fields := strings.FieldsFunc(unidecode.Unidecode(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})

	switch len(fields) {
	case 0:
		return "?"
	case 1:
		word := fields[0]
		if len(word) > 2 {
			word = word[:2]
		}
		return strings.ToUpper(word)
	default:
		return strings.ToUpper(fields[0][:1] + fields[1][:1])
	}
}
