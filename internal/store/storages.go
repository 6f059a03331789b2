package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

// NewSaltStore builds the [SaltStore] selected by cfg.Backend. For the
// SQLite backend it opens the database file, creating it if needed, and
// runs pending schema migrations.
//
// The caller owns the returned store and must Close it.
func NewSaltStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (SaltStore, error) {
	log.Debug().Str("func", "NewSaltStore").Str("backend", cfg.Backend).Msg("creating salt store...")

	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteSaltStore(db, log), nil
	case config.BackendBolt:
		return NewBoltSaltStore(cfg.Bolt, log)
	case config.BackendFile:
		return NewFileSaltStore(cfg.Files, log)
	case config.BackendKeyring:
		return NewKeyringSaltStore(cfg.Keyring, log), nil
	case config.BackendMemory:
		return NewMemorySaltStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
