package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// PostgresModelConfigStore implements the store.ModelConfigStore interface
// using a PostgreSQL database as the storage backend.
type PostgresModelConfigStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresModelConfigStore creates a new PostgreSQL implementation of the
// ModelConfigStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresModelConfigStore(db store.DBTX, logger *slog.Logger) *PostgresModelConfigStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresModelConfigStore{
		db:     db,
		logger: logger.With(slog.String("component", "model_config_store")),
	}
}

// Ensure PostgresModelConfigStore implements store.ModelConfigStore
var _ store.ModelConfigStore = (*PostgresModelConfigStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresModelConfigStore) WithTx(tx *sql.Tx) *PostgresModelConfigStore {
	return &PostgresModelConfigStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ModelConfigStore.Create.
// It saves a new model config and deactivates any previously active config,
// so the newest config is the only active one. When the store holds a raw
// connection pool, both statements run in one transaction; two concurrent
// creates must never leave two active rows.
func (s *PostgresModelConfigStore) Create(ctx context.Context, cfg *domain.ModelConfig) error {
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("model config validation failed during create",
			slog.String("error", err.Error()),
			slog.String("config_id", cfg.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if db, ok := s.db.(*sql.DB); ok {
		return store.RunInTransaction(ctx, db, s.logger, func(ctx context.Context, tx *sql.Tx) error {
			return s.WithTx(tx).create(ctx, cfg)
		})
	}

	// Already inside a caller-managed transaction.
	return s.create(ctx, cfg)
}

// create runs the deactivate-then-insert pair against the store's DBTX.
// Callers are responsible for transactional scope.
func (s *PostgresModelConfigStore) create(ctx context.Context, cfg *domain.ModelConfig) error {
	if cfg.IsActive {
		deactivate := `UPDATE model_configs SET is_active = FALSE, updated_at = NOW() WHERE is_active`
		if _, err := s.db.ExecContext(ctx, deactivate); err != nil {
			return fmt.Errorf("failed to deactivate previous model configs: %w", err)
		}
	}

	query := `
		INSERT INTO model_configs (id, endpoint, api_key, model_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		cfg.ID,
		cfg.Endpoint,
		cfg.APIKey,
		cfg.ModelName,
		cfg.IsActive,
		cfg.CreatedAt,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create model config: %w", err)
	}

	s.logger.Info("model config created",
		slog.String("config_id", cfg.ID.String()),
		slog.String("model_name", cfg.ModelName),
		slog.Bool("is_active", cfg.IsActive))

	return nil
}

// GetActive implements store.ModelConfigStore.GetActive.
// Returns store.ErrModelConfigNotFound if no configuration is active.
func (s *PostgresModelConfigStore) GetActive(ctx context.Context) (*domain.ModelConfig, error) {
	query := `
		SELECT id, endpoint, api_key, model_name, is_active, created_at, updated_at
		FROM model_configs
		WHERE is_active
		ORDER BY updated_at DESC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query))
}

// GetByID implements store.ModelConfigStore.GetByID.
// Returns store.ErrModelConfigNotFound if the config does not exist.
func (s *PostgresModelConfigStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelConfig, error) {
	query := `
		SELECT id, endpoint, api_key, model_name, is_active, created_at, updated_at
		FROM model_configs
		WHERE id = $1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// scanOne maps a single-row query result onto a domain ModelConfig,
// translating sql.ErrNoRows into the store's not-found sentinel.
func (s *PostgresModelConfigStore) scanOne(row *sql.Row) (*domain.ModelConfig, error) {
	var cfg domain.ModelConfig
	err := row.Scan(
		&cfg.ID,
		&cfg.Endpoint,
		&cfg.APIKey,
		&cfg.ModelName,
		&cfg.IsActive,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrModelConfigNotFound
		}
		return nil, fmt.Errorf("failed to scan model config: %w", err)
	}

	return &cfg, nil
}
