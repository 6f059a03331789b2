package store

import (
	"context"
	"slices"
	"sync"
)

// MemorySaltStore is an in-process [SaltStore]. Its salt does not survive
// a restart.
type MemorySaltStore struct {
	mu   sync.Mutex
	salt []byte
}

func NewMemorySaltStore() *MemorySaltStore {
	return &MemorySaltStore{}
}

func (s *MemorySaltStore) LoadSalt(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.salt == nil {
		return nil, ErrSaltNotFound
	}
	return slices.Clone(s.salt), nil
}

func (s *MemorySaltStore) CreateSalt(ctx context.Context, salt []byte) error {
	if len(salt) == 0 {
		return ErrEmptySalt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.salt != nil {
		return ErrSaltAlreadyExists
	}
	s.salt = slices.Clone(salt)
	return nil
}

func (s *MemorySaltStore) Close() error {
	return nil
}
