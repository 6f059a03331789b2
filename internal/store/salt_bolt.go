// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

var configBucket = []byte("config")

type boltSaltStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSaltStore opens (or creates) the bbolt database at cfg.Path and
// keeps the salt in its "config" bucket.
func NewBoltSaltStore(cfg config.Bolt, log *logger.Logger) (SaltStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSaltStore").Msg("error opening bolt database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(configBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket: %w", ErrOpeningStorage, err)
	}

	return &boltSaltStore{db: db, logger: log}, nil
}

func (s *boltSaltStore) LoadSalt(ctx context.Context) ([]byte, error) {
	var encoded string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(configBucket)
		if b == nil {
			return ErrSaltNotFound
		}
		v := b.Get([]byte(SaltKey))
		if v == nil {
			return ErrSaltNotFound
		}
		// v is only valid inside the transaction
		encoded = string(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decodeSalt(encoded)
}

func (s *boltSaltStore) CreateSalt(ctx context.Context, salt []byte) error {
	encoded, err := encodeSalt(salt)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(configBucket)
		if err != nil {
			return err
		}
		if b.Get([]byte(SaltKey)) != nil {
			return ErrSaltAlreadyExists
		}
		return b.Put([]byte(SaltKey), []byte(encoded))
	})
	if err != nil {
		if !errors.Is(err, ErrSaltAlreadyExists) {
			logger.FromContext(ctx).Err(err).Str("func", "boltSaltStore.CreateSalt").Msg("failed to store salt")
		}
		return err
	}
	return nil
}

func (s *boltSaltStore) Close() error {
	return s.db.Close()
}
