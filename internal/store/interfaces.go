package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/salt_store_mock.go -package=mock

// SaltStore persists the installation's encryption salt. The salt is
// write-once: CreateSalt never replaces a salt that is already stored.
type SaltStore interface {
	// LoadSalt returns the persisted salt or [ErrSaltNotFound].
	LoadSalt(ctx context.Context) ([]byte, error)
	// CreateSalt persists salt if none exists yet and returns
	// [ErrSaltAlreadyExists] otherwise.
	CreateSalt(ctx context.Context, salt []byte) error
	// Close releases the backend's resources.
	Close() error
}
