package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ModelConfig-specific validation errors
var (
	// ErrModelConfigIDEmpty is returned when a model config ID is empty or nil.
	ErrModelConfigIDEmpty = errors.New("model config ID cannot be empty")

	// ErrModelConfigAPIKeyEmpty is returned when a model config has no API key.
	ErrModelConfigAPIKeyEmpty = errors.New("model config API key cannot be empty")

	// ErrModelConfigModelNameEmpty is returned when a model config has no model name.
	ErrModelConfigModelNameEmpty = errors.New("model config model name cannot be empty")
)

// ModelConfig describes one chat-completion endpoint the generator can
// use: an OpenAI-compatible base URL, the credential for it, and the
// model to request. At most one config is active at a time; generation
// resolves the active config at session start.
type ModelConfig struct {
	ID        uuid.UUID `json:"id"`
	Endpoint  string    `json:"endpoint"`
	APIKey    string    `json:"-"`
	ModelName string    `json:"model_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewModelConfig creates a ModelConfig with a generated ID and current
// timestamps. An empty endpoint is allowed and means the provider's
// default endpoint. Returns an error if validation fails.
func NewModelConfig(endpoint, apiKey, modelName string) (*ModelConfig, error) {
	cfg := &ModelConfig{
		ID:        uuid.New(),
		Endpoint:  endpoint,
		APIKey:    apiKey,
		ModelName: modelName,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the ModelConfig has valid data.
func (c *ModelConfig) Validate() error {
	if c.ID == uuid.Nil {
		return ErrModelConfigIDEmpty
	}

	if c.APIKey == "" {
		return ErrModelConfigAPIKeyEmpty
	}

	if c.ModelName == "" {
		return ErrModelConfigModelNameEmpty
	}

	return nil
}
