package tiervalues

import (
	"fmt"
	"slices"
	"strings"
)

var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      10000,
	"SILVER":      20000,
	"GOLD":        30000,
	"PLATINUM":    40000,
	"EMERALD":     50000,
	"DIAMOND":     60000,
	"MASTER":      70000,
	"GRANDMASTER": 80000,
	"CHALLENGER":  90000,
}

var rankValues = map[string]int{
	"IV":  0,
	"III": 2500,
	"II":  5000,
	"I":   7500,
}

var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// Pre-sorted slices for better lookup.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}
var rankNames = []string{"IV", "III", "II", "I"}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsApex reports whether the tier has no divisions.
func IsApex(tier string) bool {
	return slices.Contains(apexTiers, normalize(tier))
}

// CalculateRank returns a numeric rating from tier, division and league points.
// Unknown tiers are rated 0 so they sort last.
func CalculateRank(tier string, rank string, lp int) int {
	tier = normalize(tier)
	baseValue, exists := tierValues[tier]
	if !exists {
		return 0
	}

	divisionValue, exists := rankValues[normalize(rank)]
	if !exists || IsApex(tier) {
		divisionValue = 0
	}

	return baseValue + divisionValue + lp
}

// CalculateInverseRank takes a numeric value and returns the closest tier and rank.
func CalculateInverseRank(value int) string {
	if value < 0 {
		return "IRON IV"
	}

	tierIndex := 0
	for i := len(tierNames) - 1; i >= 0; i-- {
		if value >= tierValues[tierNames[i]] {
			tierIndex = i
			break
		}
	}

	tier := tierNames[tierIndex]
	if IsApex(tier) {
		return tier
	}

	remainingValue := value - tierValues[tier]

	rankIndex := 0
	for i := len(rankNames) - 1; i >= 0; i-- {
		if remainingValue >= rankValues[rankNames[i]] {
			rankIndex = i
			break
		}
	}

	return fmt.Sprintf("%s %s", tier, rankNames[rankIndex])
}

// DisplayName formats a tier for display, "Gold II" or "Challenger".
func DisplayName(tier, rank string) string {
	tier = normalize(tier)
	if _, ok := tierValues[tier]; !ok {
		return "Unranked"
	}

	title := tier[:1] + strings.ToLower(tier[1:])
	if IsApex(tier) || rank == "" {
		return title
	}
	return title + " " + normalize(rank)
}

// WinRate returns the win percentage, 0 when no games were played.
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
