package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/selfqa-api/internal/domain"
)

// ModelConfigStore defines the interface for model configuration persistence.
// It is the Go shape of the original "which LLM can I use right now" lookup:
// generation asks for the active config once per session and degrades to a
// nil client when none resolves.
type ModelConfigStore interface {
	// Create saves a new model configuration and deactivates any previously
	// active one, so the newest config is the one generation picks up.
	// Returns validation errors from the domain ModelConfig if data is invalid.
	Create(ctx context.Context, cfg *domain.ModelConfig) error

	// GetActive retrieves the currently active model configuration.
	// Returns ErrModelConfigNotFound if no configuration is active.
	GetActive(ctx context.Context) (*domain.ModelConfig, error)

	// GetByID retrieves a model configuration by its unique ID.
	// Returns ErrModelConfigNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelConfig, error)
}
