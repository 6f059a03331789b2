package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

const (
	busyRetries     = 4
	busyBackoffBase = 25 * time.Millisecond
)

type sqliteSaltStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSaltStore returns a [SaltStore] keeping the salt in the settings
// table of db. The schema must already be migrated.
func NewSQLiteSaltStore(db *DB, logger *logger.Logger) SaltStore {
	return &sqliteSaltStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteSaltStore) LoadSalt(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingQuery(SaltKey)
	if err != nil {
		return nil, err
	}

	var encoded string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&encoded)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSaltStore.LoadSalt").Msg("failed to read salt row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeSalt(encoded)
}

func (s *sqliteSaltStore) CreateSalt(ctx context.Context, salt []byte) error {
	log := logger.FromContext(ctx)

	encoded, err := encodeSalt(salt)
	if err != nil {
		return err
	}

	query, args, err := buildInsertSettingQuery(SaltKey, encoded)
	if err != nil {
		return err
	}

	var res sql.Result
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSaltAlreadyExists
		}
		log.Err(err).Str("func", "sqliteSaltStore.CreateSalt").Msg("failed to insert salt row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSaltAlreadyExists
	}

	log.Debug().Str("func", "sqliteSaltStore.CreateSalt").Msg("salt persisted")
	return nil
}

func (s *sqliteSaltStore) Close() error {
	return s.db.Close()
}

// withRetry re-runs fn while the classifier reports the failure as
// transient (database busy or locked by another process).
func (s *sqliteSaltStore) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyBackoffBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == Retryable {
			s.logger.Warn().Err(err).Str("func", "sqliteSaltStore.withRetry").Msg("database busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
