package domain

import (
	"fmt"
	"time"
)

const (
	defaultFirstPeriodHour   = 8
	defaultFirstPeriodMinute = 30
	defaultPeriodMinutes     = 50
)

// GenerateDefaultPeriods builds a back-to-back set of 50-minute periods
// starting at 8:30 AM, for pre-filling a new schedule. With hasZeroPeriod
// the first slot is labeled "Zero Period" and numbering starts at
// "Period 1" on the second slot; otherwise numbering starts at "Period 1"
// on the first.
func GenerateDefaultPeriods(total int, hasZeroPeriod bool) []Period {
	base := time.Date(2000, time.January, 1,
		defaultFirstPeriodHour, defaultFirstPeriodMinute, 0, 0, time.Local)

	periods := make([]Period, 0, total)
	for i := 0; i < total; i++ {
		start := base.Add(time.Duration(i) * defaultPeriodMinutes * time.Minute)
		end := start.Add(defaultPeriodMinutes * time.Minute)

		label := fmt.Sprintf("Period %d", i+1)
		if hasZeroPeriod {
			if i == 0 {
				label = "Zero Period"
			} else {
				label = fmt.Sprintf("Period %d", i)
			}
		}

		periods = append(periods, Period{
			Label:     label,
			StartTime: FormatTimeOfDay(start),
			EndTime:   FormatTimeOfDay(end),
		})
	}
	return periods
}
