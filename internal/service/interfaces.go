package service

import (
	"context"

	"github.com/alexanderramin/chime/internal/contract"
	"github.com/alexanderramin/chime/internal/domain"
)

type ScheduleService interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	GetByName(ctx context.Context, name string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	Delete(ctx context.Context, id string) error
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Set(ctx context.Context, s *domain.Settings) error
}
