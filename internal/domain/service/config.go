package service

import (
	"context"

	"call-audio-router/internal/config"
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

type ConfigService struct {
	repo ports.ConfigRepository
}

func NewConfigService(repo ports.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

func (s *ConfigService) GetConfig(ctx context.Context) (*model.Config, error) {
	return s.repo.Get(ctx)
}

// UpdateConfig persists cfg for the next run. The running session is not rewired.
func (s *ConfigService) UpdateConfig(ctx context.Context, cfg *model.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	return s.repo.Save(ctx, cfg)
}
