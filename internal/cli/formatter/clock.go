package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

// FormatClock renders an instant for display, honoring the 12/24-hour
// preference. Display only; the persisted form is always 12-hour.
func FormatClock(t time.Time, use24Hour bool) string {
	if use24Hour {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	return domain.FormatTimeOfDay(t)
}

// FormatRemaining renders a countdown duration as "1h 05m 30s",
// dropping leading zero components. Negative durations clamp to "0s".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
