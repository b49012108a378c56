package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/store"
)

// fakeDBTX records executed statements. Row queries are not supported
// because *sql.Row cannot be constructed outside database/sql; those
// paths are covered by integration tests against a real database.
type fakeDBTX struct {
	executed []string
	execErr  error
}

func (f *fakeDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.executed = append(f.executed, query)
	return nil, f.execErr
}

func (f *fakeDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func testStoreLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPostgresModelConfigStore_PanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgresModelConfigStore(nil, testStoreLogger())
	})
}

func TestWithTx_BindsStoreToTransaction(t *testing.T) {
	// A real *sql.Tx needs a database connection; transaction behavior
	// itself is covered by integration tests. Here we verify the binding.
	db := &fakeDBTX{}
	s := NewPostgresModelConfigStore(db, testStoreLogger())

	tx := &sql.Tx{}
	txStore := s.WithTx(tx)

	require.NotNil(t, txStore)
	assert.Equal(t, store.DBTX(tx), txStore.db)
	assert.Equal(t, s.logger, txStore.logger)
}

func TestCreate_RejectsInvalidConfig(t *testing.T) {
	db := &fakeDBTX{}
	s := NewPostgresModelConfigStore(db, testStoreLogger())

	err := s.Create(context.Background(), &domain.ModelConfig{})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Empty(t, db.executed, "invalid config must not reach the database")
}

func TestCreate_DeactivatesPreviousActiveConfig(t *testing.T) {
	db := &fakeDBTX{}
	s := NewPostgresModelConfigStore(db, testStoreLogger())

	cfg, err := domain.NewModelConfig("", "sk-test", "gpt-4o-mini")
	require.NoError(t, err)

	require.NoError(t, s.Create(context.Background(), cfg))

	require.Len(t, db.executed, 2)
	assert.Contains(t, db.executed[0], "is_active = FALSE")
	assert.Contains(t, db.executed[1], "INSERT INTO model_configs")
}

func TestCreate_InactiveConfigSkipsDeactivation(t *testing.T) {
	db := &fakeDBTX{}
	s := NewPostgresModelConfigStore(db, testStoreLogger())

	cfg, err := domain.NewModelConfig("", "sk-test", "gpt-4o-mini")
	require.NoError(t, err)
	cfg.IsActive = false

	require.NoError(t, s.Create(context.Background(), cfg))

	require.Len(t, db.executed, 1)
	assert.True(t, strings.Contains(db.executed[0], "INSERT INTO model_configs"))
}

func TestCreate_WrapsExecError(t *testing.T) {
	db := &fakeDBTX{execErr: errors.New("connection reset")}
	s := NewPostgresModelConfigStore(db, testStoreLogger())

	cfg, err := domain.NewModelConfig("", "sk-test", "gpt-4o-mini")
	require.NoError(t, err)

	err = s.Create(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
