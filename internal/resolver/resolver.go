// Package resolver answers "what is happening right now" for a bell
// schedule: which block is active, or which transitional state applies,
// and how long until the next transition.
//
// Resolve is a pure function of (schedule, now). It holds no state,
// mutates nothing it is given, and never returns an error: malformed
// time strings are absorbed by the parse fallback, and every other input
// maps to one of the StatusKind values. Callers poll it on whatever
// cadence their display needs.
package resolver

import (
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

type StatusKind string

const (
	// NoScheduleToday means no saved schedule is eligible today.
	// Produced by callers when SelectActiveSchedule returns nil;
	// Resolve itself never emits it.
	NoScheduleToday StatusKind = "no_schedule_today"
	BeforeSchool    StatusKind = "before_school"
	InBlock         StatusKind = "in_block"
	PassingTime     StatusKind = "passing_time"
	SchoolClosed    StatusKind = "school_closed"
)

// PassingTimeLabel is the display label reported between blocks.
const PassingTimeLabel = "Passing Time"

// Result is one resolved moment. BlockLabel is set for InBlock and
// PassingTime; Remaining is the time until the next transition and is
// zero for SchoolClosed and NoScheduleToday.
type Result struct {
	Kind       StatusKind
	BlockLabel string
	Remaining  time.Duration
}

// Resolve classifies now against the schedule's blocks for now's
// calendar day.
//
// Containment is half-open [start, end): an instant equal to a block's
// end has already left it. When blocks overlap, the first in ascending
// start order wins; that is the documented tie-break, not an error.
func Resolve(s *domain.Schedule, now time.Time) Result {
	if !s.AppliesOn(now.Weekday()) {
		return Result{Kind: SchoolClosed}
	}

	blocks := BuildBlocks(s, now)
	if len(blocks) == 0 {
		return Result{Kind: SchoolClosed}
	}

	for i, block := range blocks {
		if block.Contains(now) {
			return Result{
				Kind:       InBlock,
				BlockLabel: block.Label,
				Remaining:  block.End.Sub(now),
			}
		}
		if i < len(blocks)-1 {
			next := blocks[i+1]
			if !now.Before(block.End) && now.Before(next.Start) {
				return Result{
					Kind:       PassingTime,
					BlockLabel: PassingTimeLabel,
					Remaining:  next.Start.Sub(now),
				}
			}
		}
	}

	if now.Before(blocks[0].Start) {
		return Result{
			Kind:      BeforeSchool,
			Remaining: blocks[0].Start.Sub(now),
		}
	}
	return Result{Kind: SchoolClosed}
}
