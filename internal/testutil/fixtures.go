package testutil

import (
	"time"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/google/uuid"
)

// NewWeekdaySchedule returns a valid Mon-Fri schedule with two morning
// periods, suitable as a baseline fixture. Callers mutate it as needed.
func NewWeekdaySchedule(name string) *domain.Schedule {
	now := time.Now().UTC()
	return &domain.Schedule{
		ID:           uuid.NewString(),
		Name:         name,
		SelectedDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Periods: []domain.Period{
			{Label: "Period 1", StartTime: "8:00 AM", EndTime: "8:50 AM"},
			{Label: "Period 2", StartTime: "9:00 AM", EndTime: "9:50 AM"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
