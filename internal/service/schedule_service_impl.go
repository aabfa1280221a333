package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/alexanderramin/chime/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
}

func NewScheduleService(schedules repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedules: schedules}
}

// Create validates the schedule, enforces case-insensitive name
// uniqueness, and assigns ID and timestamps.
func (s *scheduleService) Create(ctx context.Context, sched *domain.Schedule) error {
	sched.Name = strings.TrimSpace(sched.Name)
	if err := sched.Validate(); err != nil {
		return err
	}

	existing, err := s.schedules.GetByName(ctx, sched.Name)
	if err != nil {
		return fmt.Errorf("checking name uniqueness: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("a schedule named %q already exists", existing.Name)
	}

	if sched.ID == "" {
		sched.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sched.CreatedAt = now
	sched.UpdatedAt = now

	if err := s.schedules.Create(ctx, sched); err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *scheduleService) GetByName(ctx context.Context, name string) (*domain.Schedule, error) {
	sched, err := s.schedules.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, fmt.Errorf("no schedule named %q", name)
	}
	return sched, nil
}

func (s *scheduleService) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.schedules.List(ctx)
}

func (s *scheduleService) Update(ctx context.Context, sched *domain.Schedule) error {
	sched.Name = strings.TrimSpace(sched.Name)
	if err := sched.Validate(); err != nil {
		return err
	}

	existing, err := s.schedules.GetByName(ctx, sched.Name)
	if err != nil {
		return fmt.Errorf("checking name uniqueness: %w", err)
	}
	if existing != nil && existing.ID != sched.ID {
		return fmt.Errorf("a schedule named %q already exists", existing.Name)
	}

	sched.UpdatedAt = time.Now().UTC()
	if err := s.schedules.Update(ctx, sched); err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.schedules.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return nil
}
