package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chime/internal/contract"
	"github.com/alexanderramin/chime/internal/repository"
	"github.com/alexanderramin/chime/internal/resolver"
)

type statusService struct {
	schedules repository.ScheduleRepo
	settings  repository.SettingsRepo
}

func NewStatusService(schedules repository.ScheduleRepo, settings repository.SettingsRepo) StatusService {
	return &statusService{schedules: schedules, settings: settings}
}

// GetStatus selects today's active schedule and resolves the current
// block. Schedule lookup happens here; the resolver only ever sees one
// already-selected schedule.
func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedules: %w", err)
	}

	resp := &contract.StatusResponse{
		Now:       now,
		Use24Hour: settings.Use24HourClock,
	}

	active := resolver.SelectActiveSchedule(schedules, now)
	if active == nil {
		resp.Kind = resolver.NoScheduleToday
		return resp, nil
	}

	result := resolver.Resolve(active, now)
	resp.Kind = result.Kind
	resp.ScheduleID = active.ID
	resp.ScheduleName = active.Name
	resp.BlockLabel = result.BlockLabel
	resp.Remaining = result.Remaining

	if result.Kind == resolver.InBlock {
		for _, b := range resolver.BuildBlocks(active, now) {
			if b.Label == result.BlockLabel && b.Contains(now) {
				resp.BlockStart = b.Start
				resp.BlockEnd = b.End
				break
			}
		}
	}
	return resp, nil
}
