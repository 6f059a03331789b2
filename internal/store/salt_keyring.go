// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

type keyringSaltStore struct {
	service string
	user    string
	mu      sync.Mutex
	logger  *logger.Logger
}

// NewKeyringSaltStore keeps the salt in the OS keyring under
// cfg.Service / cfg.User.
//
// The keyring has no create-only primitive, so write-once is only
// guaranteed against callers in this process.
func NewKeyringSaltStore(cfg config.Keyring, log *logger.Logger) SaltStore {
	return &keyringSaltStore{
		service: cfg.Service,
		user:    cfg.User,
		logger:  log,
	}
}

func (s *keyringSaltStore) LoadSalt(ctx context.Context) ([]byte, error) {
	encoded, err := keyring.Get(s.service, s.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}
	return decodeSalt(encoded)
}

func (s *keyringSaltStore) CreateSalt(ctx context.Context, salt []byte) error {
	encoded, err := encodeSalt(salt)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = keyring.Get(s.service, s.user)
	switch {
	case err == nil:
		return ErrSaltAlreadyExists
	case !errors.Is(err, keyring.ErrNotFound):
		return fmt.Errorf("read keyring: %w", err)
	}

	if err := keyring.Set(s.service, s.user, encoded); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keyringSaltStore.CreateSalt").Msg("failed to write keyring entry")
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

func (s *keyringSaltStore) Close() error {
	return nil
}
