package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

type saltDocument struct {
	EncryptionSalt string `json:"encryption_salt"`
}

type fileSaltStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSaltStore keeps the salt in a small 0600 JSON document at
// cfg.SaltFile.
func NewFileSaltStore(cfg config.Files, log *logger.Logger) (SaltStore, error) {
	if dir := filepath.Dir(cfg.SaltFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
		}
	}
	return &fileSaltStore{path: cfg.SaltFile, logger: log}, nil
}

func (s *fileSaltStore) LoadSalt(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read salt file: %w", err)
	}

	var doc saltDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedSalt, err)
	}

	return decodeSalt(doc.EncryptionSalt)
}

// CreateSalt writes the document to a temp file and hard-links it into
// place. The link fails if the target exists, so a concurrent creator in
// another process can never be overwritten and readers never observe a
// partially written file.
func (s *fileSaltStore) CreateSalt(ctx context.Context, salt []byte) error {
	log := logger.FromContext(ctx)

	encoded, err := encodeSalt(salt)
	if err != nil {
		return err
	}

	data, err := json.Marshal(saltDocument{EncryptionSalt: encoded})
	if err != nil {
		return fmt.Errorf("encode salt document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return ErrSaltAlreadyExists
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".salt-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp salt file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp salt file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp salt file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp salt file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp salt file: %w", err)
	}

	if err := os.Link(tmpName, s.path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrSaltAlreadyExists
		}
		log.Err(err).Str("func", "fileSaltStore.CreateSalt").Msg("failed to move salt file into place")
		return fmt.Errorf("link salt file: %w", err)
	}

	return nil
}

func (s *fileSaltStore) Close() error {
	return nil
}
