package resolver

import (
	"sort"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

// Block labels for the optional windows a schedule can carry alongside
// its periods.
const (
	BreakLabel = "Break"
	LunchLabel = "Lunch"
)

// TimeBlock is a named interval anchored to a concrete calendar day.
// Blocks are rebuilt from the schedule on every resolution call and are
// never persisted.
type TimeBlock struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports half-open containment: t in [Start, End). An inverted
// or zero-length block contains nothing.
func (b TimeBlock) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// BuildBlocks expands a schedule into its blocks for the calendar day of
// ref: one per period, plus Break and Lunch when enabled, sorted ascending
// by start. The sort is stable, so equal starts keep input order
// (periods before break before lunch).
func BuildBlocks(s *domain.Schedule, ref time.Time) []TimeBlock {
	blocks := make([]TimeBlock, 0, len(s.Periods)+2)
	for _, p := range s.Periods {
		blocks = append(blocks, TimeBlock{
			Label: p.Label,
			Start: domain.ParseTimeOfDay(p.StartTime, ref),
			End:   domain.ParseTimeOfDay(p.EndTime, ref),
		})
	}
	if s.HasBreak {
		blocks = append(blocks, TimeBlock{
			Label: BreakLabel,
			Start: domain.ParseTimeOfDay(s.BreakStartTime, ref),
			End:   domain.ParseTimeOfDay(s.BreakEndTime, ref),
		})
	}
	if s.HasLunch {
		blocks = append(blocks, TimeBlock{
			Label: LunchLabel,
			Start: domain.ParseTimeOfDay(s.LunchStartTime, ref),
			End:   domain.ParseTimeOfDay(s.LunchEndTime, ref),
		})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})
	return blocks
}
