package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/alexanderramin/chime/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Set(ctx context.Context, settings *domain.Settings) error {
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
