package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

// FormatScheduleList renders a one-line-per-schedule summary.
func FormatScheduleList(schedules []*domain.Schedule) string {
	if len(schedules) == 0 {
		return Dim("No schedules yet. Run `chime setup` to create one.") + "\n"
	}

	var b strings.Builder
	for _, s := range schedules {
		extras := ""
		if s.HasBreak {
			extras += " +break"
		}
		if s.HasLunch {
			extras += " +lunch"
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s%s\n",
			Bold(s.Name),
			StyleBlue.Render(strings.Join(s.SelectedDays, " ")),
			Dim(fmt.Sprintf("%d periods", len(s.Periods))),
			Dim(extras),
		))
	}
	return b.String()
}

// FormatSchedule renders the full block table for one schedule.
func FormatSchedule(s *domain.Schedule, use24Hour bool) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(s.Name) + "\n")
	b.WriteString(Dim("Days: "+strings.Join(s.SelectedDays, ", ")) + "\n\n")

	for _, p := range s.Periods {
		b.WriteString(formatBlockLine(p.Label, p.StartTime, p.EndTime, use24Hour))
	}
	if s.HasBreak {
		b.WriteString(formatBlockLine("Break", s.BreakStartTime, s.BreakEndTime, use24Hour))
	}
	if s.HasLunch {
		b.WriteString(formatBlockLine("Lunch", s.LunchStartTime, s.LunchEndTime, use24Hour))
	}
	return b.String()
}

func formatBlockLine(label, start, end string, use24Hour bool) string {
	if use24Hour {
		// Re-anchor to an arbitrary day purely to reformat the clock.
		ref := anchorDay()
		start = FormatClock(domain.ParseTimeOfDay(start, ref), true)
		end = FormatClock(domain.ParseTimeOfDay(end, ref), true)
	}
	// Pad before styling; ANSI escapes would defeat %-16s.
	return fmt.Sprintf("  %s %s\n", Bold(fmt.Sprintf("%-16s", label)), Dim(start+" – "+end))
}

func anchorDay() time.Time {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)
}
