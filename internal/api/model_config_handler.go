package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/selfqa-api/internal/api/shared"
	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// ModelConfigManager is the narrow service surface this handler needs.
type ModelConfigManager interface {
	CreateConfig(ctx context.Context, endpoint, apiKey, modelName string) (*domain.ModelConfig, error)
	GetActiveConfig(ctx context.Context) (*domain.ModelConfig, error)
	GetConfigByID(ctx context.Context, id uuid.UUID) (*domain.ModelConfig, error)
}

// CreateModelConfigRequest represents the request body for registering a
// model configuration. The API key is write-only; it never appears in
// responses.
type CreateModelConfigRequest struct {
	Endpoint  string `json:"endpoint"   validate:"omitempty,url"`
	APIKey    string `json:"api_key"    validate:"required,min=1"`
	ModelName string `json:"model_name" validate:"required,min=1"`
}

// ModelConfigResponse represents the response data for a model configuration.
type ModelConfigResponse struct {
	ID        string    `json:"id"`
	Endpoint  string    `json:"endpoint"`
	ModelName string    `json:"model_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ModelConfigHandler handles model-configuration HTTP requests.
type ModelConfigHandler struct {
	configs ModelConfigManager
	logger  *slog.Logger
}

// NewModelConfigHandler creates a new ModelConfigHandler.
func NewModelConfigHandler(configs ModelConfigManager, logger *slog.Logger) *ModelConfigHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ModelConfigHandler{
		configs: configs,
		logger:  logger.With(slog.String("component", "model_config_handler")),
	}
}

// CreateModelConfig handles POST /api/model-configs requests.
// The new configuration becomes the active one for subsequent sessions.
func (h *ModelConfigHandler) CreateModelConfig(w http.ResponseWriter, r *http.Request) {
	var req CreateModelConfigRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cfg, err := h.configs.CreateConfig(r.Context(), req.Endpoint, req.APIKey, req.ModelName)
	if err != nil {
		h.logger.Error("failed to create model config", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create model config")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, modelConfigToResponse(cfg))
}

// GetActiveModelConfig handles GET /api/model-configs/active requests.
func (h *ModelConfigHandler) GetActiveModelConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configs.GetActiveConfig(r.Context())
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No active model config")
			return
		}
		h.logger.Error("failed to load active model config", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load model config")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, modelConfigToResponse(cfg))
}

// GetModelConfigByID handles GET /api/model-configs/{id} requests.
func (h *ModelConfigHandler) GetModelConfigByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid model config ID")
		return
	}

	cfg, err := h.configs.GetConfigByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Model config not found")
			return
		}
		h.logger.Error("failed to load model config",
			"config_id", id.String(),
			"error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load model config")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, modelConfigToResponse(cfg))
}

// modelConfigToResponse converts a domain.ModelConfig to a ModelConfigResponse.
func modelConfigToResponse(cfg *domain.ModelConfig) ModelConfigResponse {
	return ModelConfigResponse{
		ID:        cfg.ID.String(),
		Endpoint:  cfg.Endpoint,
		ModelName: cfg.ModelName,
		IsActive:  cfg.IsActive,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}
}
