package domain

import (
	"fmt"
	"strings"
	"time"
)

// Day tokens are three-letter English weekday abbreviations ("Mon".."Sun"),
// the persisted form used by SelectedDays.
var ValidDayTokens = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true,
	"Fri": true, "Sat": true, "Sun": true,
}

// DayToken returns the persisted token for a time.Weekday.
func DayToken(d time.Weekday) string {
	return d.String()[:3]
}

// Schedule is one weekly bell schedule: an ordered set of class periods
// plus optional break and lunch windows, active on SelectedDays.
// Period order is input order; consumers that need chronological order
// must sort by start time themselves.
type Schedule struct {
	ID           string
	Name         string
	SelectedDays []string
	Periods      []Period

	HasBreak       bool
	BreakStartTime string
	BreakEndTime   string

	HasLunch       bool
	LunchStartTime string
	LunchEndTime   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period is a single named class block. StartTime and EndTime are
// wall-clock strings in the "h:mm AM" form, date-agnostic until anchored.
type Period struct {
	Label     string
	StartTime string
	EndTime   string
}

// AppliesOn reports whether the schedule is eligible on the given weekday.
func (s *Schedule) AppliesOn(d time.Weekday) bool {
	token := DayToken(d)
	for _, day := range s.SelectedDays {
		if day == token {
			return true
		}
	}
	return false
}

// Validate checks the save-time invariants: non-empty name, at least one
// valid selected day, non-empty period labels, and parseable time strings
// (including break/lunch windows when their flags are set). The resolver
// never enforces these; creation paths must.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("schedule name is required")
	}
	if len(s.SelectedDays) == 0 {
		return fmt.Errorf("schedule %q must have at least one selected day", s.Name)
	}
	for _, day := range s.SelectedDays {
		if !ValidDayTokens[day] {
			return fmt.Errorf("invalid day token %q (expected Mon..Sun)", day)
		}
	}
	for i, p := range s.Periods {
		if strings.TrimSpace(p.Label) == "" {
			return fmt.Errorf("period %d has an empty label", i+1)
		}
		if _, _, err := ParseClock(p.StartTime); err != nil {
			return fmt.Errorf("period %q start time: %w", p.Label, err)
		}
		if _, _, err := ParseClock(p.EndTime); err != nil {
			return fmt.Errorf("period %q end time: %w", p.Label, err)
		}
	}
	if s.HasBreak {
		if _, _, err := ParseClock(s.BreakStartTime); err != nil {
			return fmt.Errorf("break start time: %w", err)
		}
		if _, _, err := ParseClock(s.BreakEndTime); err != nil {
			return fmt.Errorf("break end time: %w", err)
		}
	}
	if s.HasLunch {
		if _, _, err := ParseClock(s.LunchStartTime); err != nil {
			return fmt.Errorf("lunch start time: %w", err)
		}
		if _, _, err := ParseClock(s.LunchEndTime); err != nil {
			return fmt.Errorf("lunch end time: %w", err)
		}
	}
	return nil
}

// Settings holds user display preferences layered on top of the engine
// output. Presentation only; the resolver never sees it.
type Settings struct {
	Use24HourClock bool
}
