package queuevalues

const (
	summonersRift    = "Summoner's Rift"
	twistedTreeline  = "Twisted Treeline"
	crystalScar      = "Crystal Scar"
	howlingAbyss     = "Howling Abyss"
	convergence      = "Convergence"
	crashSite        = "Crash Site"
	swarmModeGames   = "Swarm Mode Games"
	valoranCityPark  = "Valoran City Park"
	nexusBlitz       = "Nexus Blitz"
	ringsOfWrath     = "Rings of Wrath"
	coopIntro        = "Co-op vs AI Intro"
	coopBeginner     = "Co-op vs AI Beginner"
	coopIntermediate = "Co-op vs AI Intermediate"
)

var queueTable = map[int]Queue{
	0:    {"Custom", "Custom games"},
	2:    {"Blind Pick", summonersRift},
	4:    {"Ranked Solo", summonersRift},
	6:    {"Ranked Premade", summonersRift},
	7:    {"Co-op vs AI", summonersRift},
	8:    {"Normal 3v3", twistedTreeline},
	9:    {"Ranked 3v3", twistedTreeline},
	14:   {"Draft Pick", summonersRift},
	16:   {"Dominion Blind", crystalScar},
	17:   {"Dominion Draft", crystalScar},
	25:   {"Dominion Co-op vs AI", crystalScar},
	31:   {coopIntro, summonersRift},
	32:   {coopBeginner, summonersRift},
	33:   {coopIntermediate, summonersRift},
	41:   {"Ranked 3v3 Team", twistedTreeline},
	42:   {"Ranked 5v5 Team", summonersRift},
	52:   {"Co-op vs AI 3v3", twistedTreeline},
	61:   {"Team Builder", summonersRift},
	65:   {"ARAM", howlingAbyss},
	67:   {"ARAM Co-op vs AI", howlingAbyss},
	70:   {"One for All", summonersRift},
	72:   {"Snowdown 1v1", howlingAbyss},
	73:   {"Snowdown 2v2", howlingAbyss},
	75:   {"Hexakill SR", summonersRift},
	76:   {"URF", summonersRift},
	78:   {"One For All Mirror", howlingAbyss},
	83:   {"Co-op vs AI URF", summonersRift},
	91:   {"Doom Bots Rank 1", summonersRift},
	92:   {"Doom Bots Rank 2", summonersRift},
	93:   {"Doom Bots Rank 5", summonersRift},
	96:   {"Ascension", crystalScar},
	98:   {"Hexakill TT", twistedTreeline},
	100:  {"ARAM", "Butcher's Bridge"},
	300:  {"Legend of the Poro King", howlingAbyss},
	310:  {"Nemesis", summonersRift},
	313:  {"Black Market Brawlers", summonersRift},
	315:  {"Nexus Siege", summonersRift},
	317:  {"Definitely Not Dominion", crystalScar},
	318:  {"ARURF", summonersRift},
	325:  {"All Random", summonersRift},
	400:  {"Draft Pick", summonersRift},
	410:  {"Ranked Dynamic", summonersRift},
	420:  {"Ranked Solo/Duo", summonersRift},
	430:  {"Blind Pick", summonersRift},
	440:  {"Ranked Flex", summonersRift},
	450:  {"ARAM", howlingAbyss},
	460:  {"Blind Pick 3v3", twistedTreeline},
	470:  {"Ranked Flex 3v3", twistedTreeline},
	490:  {"Quickplay", summonersRift},
	600:  {"Blood Hunt Assassin", summonersRift},
	610:  {"Dark Star: Singularity", "Cosmic Ruins"},
	700:  {"Clash", summonersRift},
	720:  {"ARAM Clash", howlingAbyss},
	800:  {"Co-op vs AI Intermediate 3v3", twistedTreeline},
	810:  {"Co-op vs AI Intro 3v3", twistedTreeline},
	820:  {"Co-op vs AI Beginner 3v3", twistedTreeline},
	830:  {coopIntro, summonersRift},
	840:  {coopBeginner, summonersRift},
	850:  {coopIntermediate, summonersRift},
	870:  {coopIntro, summonersRift},
	880:  {coopBeginner, summonersRift},
	890:  {coopIntermediate, summonersRift},
	900:  {"ARURF", summonersRift},
	910:  {"Ascension", crystalScar},
	920:  {"Legend of the Poro King", howlingAbyss},
	940:  {"Nexus Siege", summonersRift},
	950:  {"Doom Bots Voting", summonersRift},
	960:  {"Doom Bots Standard", summonersRift},
	980:  {"Star Guardian Invasion: Normal", valoranCityPark},
	990:  {"Star Guardian Invasion: Onslaught", valoranCityPark},
	1000: {"PROJECT: Hunters", "Overcharge"},
	1010: {"Snow ARURF", summonersRift},
	1020: {"One for All", summonersRift},
	1030: {"Odyssey Extraction: Intro", crashSite},
	1040: {"Odyssey Extraction: Cadet", crashSite},
	1050: {"Odyssey Extraction: Crewmember", crashSite},
	1060: {"Odyssey Extraction: Captain", crashSite},
	1070: {"Odyssey Extraction: Onslaught", crashSite},
	1090: {"Teamfight Tactics", convergence},
	1100: {"Ranked Teamfight Tactics", convergence},
	1110: {"Teamfight Tactics Tutorial", convergence},
	1111: {"Teamfight Tactics Test", convergence},
	1200: {"Nexus Blitz", nexusBlitz},
	1210: {"Teamfight Tactics Choncc's Treasure", convergence},
	1300: {"Nexus Blitz", nexusBlitz},
	1400: {"Ultimate Spellbook", summonersRift},
	1700: {"Arena", ringsOfWrath},
	1710: {"Arena", ringsOfWrath},
	1810: {"Swarm (1 player)", "Swarm"},
	1820: {"Swarm (2 players)", swarmModeGames},
	1830: {"Swarm (3 players)", swarmModeGames},
	1840: {"Swarm (4 players)", swarmModeGames},
	1900: {"Pick URF", summonersRift},
	2000: {"Tutorial 1", summonersRift},
	2010: {"Tutorial 2", summonersRift},
	2020: {"Tutorial 3", summonersRift},
}

var gameModeNames = map[string]string{
	"CLASSIC":       "Classic",
	"ODIN":          "Dominion",
	"ARAM":          "ARAM",
	"TUTORIAL":      "Tutorial",
	"URF":           "URF",
	"DOOMBOTSTEEMO": "Doom Bots",
	"ONEFORALL":     "One for All",
	"ASCENSION":     "Ascension",
	"FIRSTBLOOD":    "Snowdown Showdown",
	"KINGPORO":      "Legend of the Poro King",
	"SIEGE":         "Nexus Siege",
	"ASSASSINATE":   "Blood Hunt Assassin",
	"ARSR":          "All Random Summoner's Rift",
	"DARKSTAR":      "Dark Star: Singularity",
	"STARGUARDIAN":  "Star Guardian Invasion",
	"PROJECT":       "PROJECT: Hunters",
	"GAMEMODEX":     "Nexus Blitz",
	"ODYSSEY":       "Odyssey: Extraction",
	"NEXUSBLITZ":    "Nexus Blitz",
	"ULTBOOK":       "Ultimate Spellbook",
	"CHERRY":        "Arena",
}
