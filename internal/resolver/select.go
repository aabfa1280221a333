package resolver

import (
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

// SelectActiveSchedule picks the schedule eligible on now's weekday, or
// nil if none matches. First match in slice order wins, so callers
// control precedence by how they order their saved schedules.
func SelectActiveSchedule(schedules []*domain.Schedule, now time.Time) *domain.Schedule {
	for _, s := range schedules {
		if s.AppliesOn(now.Weekday()) {
			return s
		}
	}
	return nil
}
