package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/selfqa"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// fakeModelConfigStore implements store.ModelConfigStore with canned results.
type fakeModelConfigStore struct {
	activeConfig *domain.ModelConfig
	activeErr    error
	created      []*domain.ModelConfig
	createErr    error
	byID         map[uuid.UUID]*domain.ModelConfig
}

func (s *fakeModelConfigStore) Create(ctx context.Context, cfg *domain.ModelConfig) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, cfg)
	return nil
}

func (s *fakeModelConfigStore) GetActive(ctx context.Context) (*domain.ModelConfig, error) {
	return s.activeConfig, s.activeErr
}

func (s *fakeModelConfigStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelConfig, error) {
	if cfg, ok := s.byID[id]; ok {
		return cfg, nil
	}
	return nil, store.ErrModelConfigNotFound
}

// echoModelClient answers every question with a fixed prefix.
type echoModelClient struct{}

func (echoModelClient) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	return "echo: " + messages[len(messages)-1].Content, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeTestConfig(t *testing.T) *domain.ModelConfig {
	t.Helper()
	cfg, err := domain.NewModelConfig("", "sk-test", "gpt-4o-mini")
	require.NoError(t, err)
	return cfg
}

func TestGenerateSelfQA_WithResolvableClient(t *testing.T) {
	configStore := &fakeModelConfigStore{activeConfig: activeTestConfig(t)}
	factory := func(cfg *domain.ModelConfig) (selfqa.ModelClient, error) {
		return echoModelClient{}, nil
	}

	svc := NewSelfQAService(configStore, factory, selfqa.DefaultDispatcherConfig(), testLogger())

	identity := domain.Identity{SubjectName: "Ada", Language: domain.LanguageEnglish}
	pairs := svc.GenerateSelfQA(context.Background(), identity)

	require.Len(t, pairs, len(selfqa.QuestionSet(identity)))
	for _, p := range pairs {
		assert.Equal(t, "echo: "+p.User, p.Assistant)
	}
}

func TestGenerateSelfQA_NoActiveConfigYieldsEmptyResult(t *testing.T) {
	configStore := &fakeModelConfigStore{activeErr: store.ErrModelConfigNotFound}
	factory := func(cfg *domain.ModelConfig) (selfqa.ModelClient, error) {
		t.Fatal("factory must not be called without a resolved config")
		return nil, nil
	}

	svc := NewSelfQAService(configStore, factory, selfqa.DefaultDispatcherConfig(), testLogger())

	identity := domain.Identity{SubjectName: "Ada"}
	pairs := svc.GenerateSelfQA(context.Background(), identity)

	assert.Empty(t, pairs)
}

func TestGenerateSelfQA_StoreFailureDegradesToEmptyResult(t *testing.T) {
	configStore := &fakeModelConfigStore{activeErr: errors.New("connection refused")}
	factory := func(cfg *domain.ModelConfig) (selfqa.ModelClient, error) {
		return echoModelClient{}, nil
	}

	svc := NewSelfQAService(configStore, factory, selfqa.DefaultDispatcherConfig(), testLogger())

	pairs := svc.GenerateSelfQA(context.Background(), domain.Identity{SubjectName: "Ada"})
	assert.Empty(t, pairs)
}

func TestGenerateSelfQA_ClientConstructionFailureDegradesToEmptyResult(t *testing.T) {
	configStore := &fakeModelConfigStore{activeConfig: activeTestConfig(t)}
	factory := func(cfg *domain.ModelConfig) (selfqa.ModelClient, error) {
		return nil, errors.New("bad endpoint")
	}

	svc := NewSelfQAService(configStore, factory, selfqa.DefaultDispatcherConfig(), testLogger())

	pairs := svc.GenerateSelfQA(context.Background(), domain.Identity{SubjectName: "Ada"})
	assert.Empty(t, pairs)
}

func TestModelConfigService_CreateConfig(t *testing.T) {
	configStore := &fakeModelConfigStore{}
	svc := NewModelConfigService(configStore, testLogger())

	cfg, err := svc.CreateConfig(context.Background(), "https://api.example.com/v1", "sk-test", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.ModelName)
	require.Len(t, configStore.created, 1)
	assert.Equal(t, cfg, configStore.created[0])
}

func TestModelConfigService_CreateConfig_ValidationFailureDoesNotHitStore(t *testing.T) {
	configStore := &fakeModelConfigStore{}
	svc := NewModelConfigService(configStore, testLogger())

	_, err := svc.CreateConfig(context.Background(), "", "", "gpt-4o-mini")
	assert.ErrorIs(t, err, domain.ErrModelConfigAPIKeyEmpty)
	assert.Empty(t, configStore.created)
}

func TestModelConfigService_GetActiveConfig_PassesThroughNotFound(t *testing.T) {
	configStore := &fakeModelConfigStore{activeErr: store.ErrModelConfigNotFound}
	svc := NewModelConfigService(configStore, testLogger())

	_, err := svc.GetActiveConfig(context.Background())
	assert.ErrorIs(t, err, store.ErrModelConfigNotFound)
}

func TestModelConfigService_GetConfigByID(t *testing.T) {
	cfg := activeTestConfig(t)
	configStore := &fakeModelConfigStore{byID: map[uuid.UUID]*domain.ModelConfig{cfg.ID: cfg}}
	svc := NewModelConfigService(configStore, testLogger())

	got, err := svc.GetConfigByID(context.Background(), cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = svc.GetConfigByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrModelConfigNotFound)
}
