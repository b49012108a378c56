package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/selfqa"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// ModelClientFactory builds a model client from a resolved configuration.
// It exists so the service can be tested without touching the network and
// so client construction failures stay inside the degrade-to-nil path.
type ModelClientFactory func(cfg *domain.ModelConfig) (selfqa.ModelClient, error)

// SelfQAService orchestrates one self-QA generation session: resolve the
// active model configuration, construct the chat client, and run the
// dispatcher over the identity's question set.
type SelfQAService struct {
	configStore      store.ModelConfigStore
	clientFactory    ModelClientFactory
	dispatcherConfig selfqa.DispatcherConfig
	logger           *slog.Logger
}

// NewSelfQAService creates a new SelfQAService.
func NewSelfQAService(
	configStore store.ModelConfigStore,
	clientFactory ModelClientFactory,
	dispatcherConfig selfqa.DispatcherConfig,
	logger *slog.Logger,
) *SelfQAService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SelfQAService{
		configStore:      configStore,
		clientFactory:    clientFactory,
		dispatcherConfig: dispatcherConfig,
		logger:           logger.With(slog.String("component", "selfqa_service")),
	}
}

// GenerateSelfQA runs a full generation session for the identity and
// returns the successful pairs. It never returns an error: an unresolvable
// or unconstructible model client degrades every request to the uniform
// failure path, which yields an empty result, and per-request failures are
// already swallowed inside the dispatcher.
func (s *SelfQAService) GenerateSelfQA(ctx context.Context, identity domain.Identity) []domain.QAPair {
	sessionID := uuid.New()
	logger := s.logger.With(
		slog.String("session_id", sessionID.String()),
		slog.String("subject_name", identity.SubjectName))

	client := s.resolveClient(ctx, logger)

	questions := selfqa.QuestionSet(identity)
	dispatcher := selfqa.NewDispatcher(client, s.dispatcherConfig, logger)

	return dispatcher.Generate(ctx, identity, questions)
}

// resolveClient looks up the active model configuration and turns it into
// a chat client. Every failure mode returns nil so the session degrades
// to "all requests fail" instead of aborting.
func (s *SelfQAService) resolveClient(ctx context.Context, logger *slog.Logger) selfqa.ModelClient {
	cfg, err := s.configStore.GetActive(ctx)
	if err != nil {
		if errors.Is(err, store.ErrModelConfigNotFound) {
			logger.Warn("no active model config, session will produce no pairs")
		} else {
			logger.Error("failed to resolve model config", "error", err)
		}
		return nil
	}

	client, err := s.clientFactory(cfg)
	if err != nil {
		logger.Error("failed to construct model client",
			"config_id", cfg.ID.String(),
			"error", err)
		return nil
	}

	return client
}
