package assets

import "strconv"

// UnknownArenaTeam is the name used when a participant has no subteam.
const UnknownArenaTeam = "Unknown Team"

type arenaTeam struct {
	name  string
	image string
}

var arenaTeams = map[int]arenaTeam{
	1: {"Poros", "poro"},
	2: {"Minions", "minion"},
	3: {"Scuttles", "scuttle"},
	4: {"Krugs", "krug"},
	5: {"Raptors", "raptor"},
	6: {"Sentinels", "sentinel"},
	7: {"Wolves", "wolf"},
	8: {"Gromps", "gromp"},
}

// ArenaTeamName returns the display name of an Arena subteam, "Team Wolves" for 7.
// Ids outside the table become "Team <id>", a missing id (0) is UnknownArenaTeam.
func ArenaTeamName(subteamID int) string {
	if subteamID == 0 {
		return UnknownArenaTeam
	}
	if team, ok := arenaTeams[subteamID]; ok {
		return "Team " + team.name
	}
	return "Team " + strconv.Itoa(subteamID)
}

// arenaTeamImage returns the image file name of a subteam.
func arenaTeamImage(subteamID int) (string, bool) {
	team, ok := arenaTeams[subteamID]
	if !ok {
		return "", false
	}
	return team.image, true
}
