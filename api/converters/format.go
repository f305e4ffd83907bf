package converters

import (
	"fmt"
	"strconv"
	"time"
)

// FormatGameDuration formats seconds as "25m 43s".
func FormatGameDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// FormatTimeAgo returns how long before now a game ended, "2h ago" or "3d ago".
func FormatTimeAgo(endedAt, now time.Time) string {
	diff := int64(now.Sub(endedAt) / time.Second)

	switch {
	case diff < 60:
		return "Just now"
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh ago", diff/3600)
	case diff < 30*86400:
		return fmt.Sprintf("%dd ago", diff/86400)
	default:
		return fmt.Sprintf("%dmo ago", diff/(30*86400))
	}
}

// FormatNumber abbreviates large numbers, 1500 is "1.5K" and 2300000 is "2.3M".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}
