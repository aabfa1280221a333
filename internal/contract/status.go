package contract

import (
	"time"

	"github.com/alexanderramin/chime/internal/resolver"
)

// StatusRequest asks "what is happening right now". Now overrides the
// wall clock for testing and replay; nil means time.Now().
type StatusRequest struct {
	Now *time.Time
}

// StatusResponse is one resolved moment plus the schedule context needed
// for display. ScheduleID/ScheduleName are empty when Kind is
// NoScheduleToday. BlockStart/BlockEnd are set only for InBlock, so
// views can render elapsed progress within the block.
type StatusResponse struct {
	Now          time.Time
	Kind         resolver.StatusKind
	ScheduleID   string
	ScheduleName string
	BlockLabel   string
	Remaining    time.Duration
	BlockStart   time.Time
	BlockEnd     time.Time
	Use24Hour    bool
}
