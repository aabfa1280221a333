package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a wall-clock string of the form "h:mm AM" or "h:mm PM"
// (hour 1-12, minute 0-59, uppercase meridiem) into 24-hour components.
func ParseClock(s string) (hour, minute int, err error) {
	timePart, meridiem, ok := strings.Cut(s, " ")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: missing AM/PM", s)
	}
	if meridiem != "AM" && meridiem != "PM" {
		return 0, 0, fmt.Errorf("invalid time %q: meridiem must be AM or PM", s)
	}
	hourPart, minutePart, ok := strings.Cut(timePart, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: expected h:mm", s)
	}
	hour, err = strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: bad hour", s)
	}
	minute, err = strconv.Atoi(minutePart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: bad minute", s)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// ParseTimeOfDay anchors a wall-clock string to ref's calendar day,
// producing an instant with zero seconds and nanoseconds.
//
// Malformed input does not return an error: it falls back to the current
// moment, so a degenerate block disappears into the scan instead of
// aborting the whole resolution. Callers that want strictness (save-time
// validation) use ParseClock directly.
func ParseTimeOfDay(s string, ref time.Time) time.Time {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return time.Now()
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

// FormatTimeOfDay renders an instant back to the persisted "h:mm AM" form.
// Round-trips ParseTimeOfDay for every valid input.
func FormatTimeOfDay(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}
