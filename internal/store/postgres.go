package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/internal/retry"
	"github.com/vvka-141/vshell/pkg/vshell"
)

const createStateTable = `CREATE TABLE IF NOT EXISTS vshell_state (
    namespace  text        NOT NULL,
    key        text        NOT NULL,
    value      jsonb       NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now(),
    PRIMARY KEY (namespace, key)
)`

const (
	selectState = `SELECT value FROM vshell_state WHERE namespace = $1 AND key = $2`
	upsertState = `INSERT INTO vshell_state (namespace, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteState = `DELETE FROM vshell_state WHERE namespace = $1 AND key = $2`
)

// PostgresStore keeps values as jsonb rows of the vshell_state table,
// partitioned by namespace.
type PostgresStore struct {
	pool      *pgxpool.Pool
	namespace string
	retrier   *retry.Retrier
	logger    vshell.Logger
}

// OpenPostgres connects to dsn, retrying transient failures, and creates the
// state table if it does not exist.
func OpenPostgres(ctx context.Context, dsn, namespace string, logger vshell.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid postgres dsn: %v", vshell.ErrInvalidConfig, err)
	}
	poolCfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vshell.ErrStoreUnavailable, err)
	}

	s := &PostgresStore{
		pool:      pool,
		namespace: namespace,
		logger:    logger,
		retrier: retry.New(retry.PostgresClassifier{}, retry.NewExponentialBackoff(vshell.DefaultRetryMaxAttempts)).
			WithOnRetry(func(attempt int, err error, delay time.Duration) {
				logger.Info("postgres store: attempt %d failed (%v), retrying in %s", attempt+1, err, delay.Round(time.Millisecond))
			}),
	}

	err = s.retrier.Do(ctx, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
		_, err := pool.Exec(ctx, createStateTable)
		return err
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", vshell.ErrStoreUnavailable, err)
	}

	logger.Verbose("postgres store ready (namespace %q)", namespace)
	return s, nil
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.pool.QueryRow(ctx, selectState, s.namespace, key).Scan(&value)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, vshell.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, value []byte) error {
	return s.exec(ctx, "save", key, upsertState, s.namespace, key, value)
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	return s.exec(ctx, "delete", key, deleteState, s.namespace, key)
}

func (s *PostgresStore) exec(ctx context.Context, op, key, sql string, args ...any) error {
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		_, err := s.pool.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", op, key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
