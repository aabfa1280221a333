package resolver

import (
	"testing"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday returns an instant on Monday 2025-06-16 at the given wall time.
func monday(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func onePeriodSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:           "s1",
		Name:         "Regular Day",
		SelectedDays: []string{"Mon"},
		Periods: []domain.Period{
			{Label: "Period 1", StartTime: "8:00 AM", EndTime: "8:50 AM"},
		},
	}
}

func twoPeriodSchedule() *domain.Schedule {
	s := onePeriodSchedule()
	s.Periods = append(s.Periods, domain.Period{
		Label: "Period 2", StartTime: "9:00 AM", EndTime: "9:50 AM",
	})
	return s
}

func TestResolve_InBlock(t *testing.T) {
	got := Resolve(onePeriodSchedule(), monday(8, 25))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, "Period 1", got.BlockLabel)
	assert.Equal(t, 25*time.Minute, got.Remaining)
}

func TestResolve_BeforeSchool(t *testing.T) {
	got := Resolve(onePeriodSchedule(), monday(7, 0))
	assert.Equal(t, BeforeSchool, got.Kind)
	assert.Empty(t, got.BlockLabel)
	assert.Equal(t, 60*time.Minute, got.Remaining)
}

func TestResolve_HalfOpenContainment(t *testing.T) {
	s := onePeriodSchedule()

	// Exactly at start belongs to the block.
	got := Resolve(s, monday(8, 0))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, 50*time.Minute, got.Remaining)

	// Exactly at end has already left it; with no further blocks this
	// is the closed state.
	got = Resolve(s, monday(8, 50))
	assert.Equal(t, SchoolClosed, got.Kind)
	assert.Zero(t, got.Remaining)
}

func TestResolve_PassingTime(t *testing.T) {
	got := Resolve(twoPeriodSchedule(), monday(8, 55))
	assert.Equal(t, PassingTime, got.Kind)
	assert.Equal(t, PassingTimeLabel, got.BlockLabel)
	assert.Equal(t, 5*time.Minute, got.Remaining)
}

func TestResolve_PassingTimeBoundaries(t *testing.T) {
	s := twoPeriodSchedule()

	// Exactly at first period's end: passing time starts.
	got := Resolve(s, monday(8, 50))
	assert.Equal(t, PassingTime, got.Kind)
	assert.Equal(t, 10*time.Minute, got.Remaining)

	// Exactly at second period's start: passing time is over.
	got = Resolve(s, monday(9, 0))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, "Period 2", got.BlockLabel)
}

func TestResolve_AfterLastBlock(t *testing.T) {
	got := Resolve(twoPeriodSchedule(), monday(15, 30))
	assert.Equal(t, SchoolClosed, got.Kind)
	assert.Zero(t, got.Remaining)
}

func TestResolve_DayGating(t *testing.T) {
	s := &domain.Schedule{
		Name:         "Weekdays",
		SelectedDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Periods: []domain.Period{
			{Label: "Period 1", StartTime: "8:00 AM", EndTime: "8:50 AM"},
		},
	}
	saturday := time.Date(2025, 6, 21, 8, 25, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	got := Resolve(s, saturday)
	assert.Equal(t, SchoolClosed, got.Kind, "closed on Saturday regardless of time of day")

	// Any time of day on a non-selected day is closed.
	for _, hour := range []int{0, 8, 12, 23} {
		at := time.Date(2025, 6, 21, hour, 0, 0, 0, time.UTC)
		assert.Equal(t, SchoolClosed, Resolve(s, at).Kind, "hour=%d", hour)
	}
}

func TestResolve_EmptySchedule(t *testing.T) {
	s := &domain.Schedule{
		Name:         "Empty",
		SelectedDays: []string{"Mon"},
	}
	got := Resolve(s, monday(10, 0))
	assert.Equal(t, SchoolClosed, got.Kind)
	assert.Zero(t, got.Remaining)
}

func TestResolve_OrderingIndependence(t *testing.T) {
	forward := twoPeriodSchedule()
	reversed := twoPeriodSchedule()
	reversed.Periods[0], reversed.Periods[1] = reversed.Periods[1], reversed.Periods[0]

	for _, at := range []time.Time{
		monday(7, 30), monday(8, 25), monday(8, 55), monday(9, 30), monday(11, 0),
	} {
		assert.Equal(t, Resolve(forward, at), Resolve(reversed, at), "at=%v", at)
	}
}

func TestResolve_OverlapFirstStartWins(t *testing.T) {
	s := &domain.Schedule{
		Name:         "Overlap",
		SelectedDays: []string{"Mon"},
		Periods: []domain.Period{
			{Label: "Period 4", StartTime: "11:50 AM", EndTime: "12:20 PM"},
		},
		HasLunch:       true,
		LunchStartTime: "12:00 PM",
		LunchEndTime:   "12:30 PM",
	}

	// 12:10 is inside both; the earlier-starting period wins the scan.
	got := Resolve(s, monday(12, 10))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, "Period 4", got.BlockLabel)
	assert.Equal(t, 10*time.Minute, got.Remaining)

	// Past the period's end the lunch block takes over.
	got = Resolve(s, monday(12, 20))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, LunchLabel, got.BlockLabel)
	assert.Equal(t, 10*time.Minute, got.Remaining)
}

func TestResolve_BreakAndLunchBlocks(t *testing.T) {
	s := twoPeriodSchedule()
	s.HasBreak = true
	s.BreakStartTime = "10:00 AM"
	s.BreakEndTime = "10:15 AM"
	s.HasLunch = true
	s.LunchStartTime = "12:00 PM"
	s.LunchEndTime = "12:30 PM"

	got := Resolve(s, monday(10, 5))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, BreakLabel, got.BlockLabel)

	got = Resolve(s, monday(12, 15))
	assert.Equal(t, InBlock, got.Kind)
	assert.Equal(t, LunchLabel, got.BlockLabel)

	// Gap between lunch end and... nothing: closed.
	got = Resolve(s, monday(12, 30))
	assert.Equal(t, SchoolClosed, got.Kind)
}

func TestResolve_ZeroLengthBlockIsInvisible(t *testing.T) {
	s := twoPeriodSchedule()
	s.Periods = append(s.Periods, domain.Period{
		Label: "Ghost", StartTime: "8:55 AM", EndTime: "8:55 AM",
	})

	// The empty interval matches nothing, even at its own start; the
	// scan falls through to the gap ending at Period 2.
	got := Resolve(s, monday(8, 55))
	assert.Equal(t, PassingTime, got.Kind)
	assert.Equal(t, 5*time.Minute, got.Remaining)

	// But it still participates in gap math: before it, remaining runs
	// to the ghost's start rather than Period 2's.
	got = Resolve(s, monday(8, 52))
	assert.Equal(t, PassingTime, got.Kind)
	assert.Equal(t, 3*time.Minute, got.Remaining)
}

func TestResolve_InvertedBlockIsInvisible(t *testing.T) {
	s := onePeriodSchedule()
	s.Periods = append(s.Periods, domain.Period{
		Label: "Backwards", StartTime: "10:00 AM", EndTime: "9:30 AM",
	})

	got := Resolve(s, monday(10, 30))
	assert.Equal(t, SchoolClosed, got.Kind, "inverted block never matches containment")
}

func TestResolve_MonotonicRemaining(t *testing.T) {
	s := onePeriodSchedule()
	prev := 51 * time.Minute
	for minute := 0; minute < 50; minute++ {
		got := Resolve(s, monday(8, minute))
		require.Equal(t, InBlock, got.Kind, "minute=%d", minute)
		assert.Less(t, got.Remaining, prev, "remaining must strictly decrease")
		prev = got.Remaining
	}
}

func TestResolve_DoesNotMutateSchedule(t *testing.T) {
	s := twoPeriodSchedule()
	// Supply periods out of order and check they stay that way.
	s.Periods[0], s.Periods[1] = s.Periods[1], s.Periods[0]
	before := make([]domain.Period, len(s.Periods))
	copy(before, s.Periods)

	Resolve(s, monday(8, 25))
	assert.Equal(t, before, s.Periods, "resolver must not reorder the caller's periods")
}

func TestBuildBlocks_SortedByStart(t *testing.T) {
	s := twoPeriodSchedule()
	s.Periods[0], s.Periods[1] = s.Periods[1], s.Periods[0]
	s.HasBreak = true
	s.BreakStartTime = "8:50 AM"
	s.BreakEndTime = "9:00 AM"

	blocks := BuildBlocks(s, monday(0, 0))
	require.Len(t, blocks, 3)
	assert.Equal(t, "Period 1", blocks[0].Label)
	assert.Equal(t, "Break", blocks[1].Label)
	assert.Equal(t, "Period 2", blocks[2].Label)
	for i := 1; i < len(blocks); i++ {
		assert.False(t, blocks[i].Start.Before(blocks[i-1].Start))
	}
}
