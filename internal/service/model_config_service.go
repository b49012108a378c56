package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// ModelConfigService manages the model configurations the generator draws
// its chat client from.
type ModelConfigService struct {
	configStore store.ModelConfigStore
	logger      *slog.Logger
}

// NewModelConfigService creates a new ModelConfigService.
func NewModelConfigService(configStore store.ModelConfigStore, logger *slog.Logger) *ModelConfigService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ModelConfigService{
		configStore: configStore,
		logger:      logger.With(slog.String("component", "model_config_service")),
	}
}

// CreateConfig validates and stores a new model configuration. The new
// configuration becomes the active one.
func (s *ModelConfigService) CreateConfig(ctx context.Context, endpoint, apiKey, modelName string) (*domain.ModelConfig, error) {
	cfg, err := domain.NewModelConfig(endpoint, apiKey, modelName)
	if err != nil {
		return nil, err
	}

	if err := s.configStore.Create(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to store model config: %w", err)
	}

	return cfg, nil
}

// GetActiveConfig returns the configuration generation currently uses.
// Returns store.ErrModelConfigNotFound when none is active.
func (s *ModelConfigService) GetActiveConfig(ctx context.Context) (*domain.ModelConfig, error) {
	return s.configStore.GetActive(ctx)
}

// GetConfigByID returns a configuration by its ID, active or not.
// Returns store.ErrModelConfigNotFound when no such config exists.
func (s *ModelConfigService) GetConfigByID(ctx context.Context, id uuid.UUID) (*domain.ModelConfig, error) {
	return s.configStore.GetByID(ctx, id)
}
