// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pii-vault/internal/crypto"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
	"github.com/MKhiriev/go-pii-vault/internal/store"
)

// SaltStore is the persisted-salt dependency of an [Engine]. Every
// [store.SaltStore] satisfies it.
type SaltStore interface {
	LoadSalt(ctx context.Context) ([]byte, error)
	CreateSalt(ctx context.Context, salt []byte) error
}

// SessionInfo describes the current unlocked session. It is a display
// marker only and never proves that the passphrase was correct.
type SessionInfo struct {
	// Fingerprint is a short, non-reversible identifier of the key.
	Fingerprint string
	// Scheme is the wire version new values are encrypted with.
	Scheme     string
	UnlockedAt time.Time
}

// Engine holds the derived key of one session. The zero value is not
// usable; construct it with [New]. All methods are safe for concurrent
// use: Encrypt and Decrypt run in parallel, while Unlock and Lock wait for
// in-flight operations to finish.
type Engine struct {
	store   SaltStore
	logger  *logger.Logger
	scheme  crypto.Scheme
	now     func() time.Time
	newSalt func(crypto.Scheme) ([]byte, error)

	mu      sync.RWMutex
	key     *crypto.SecretKey
	salt    []byte
	session SessionInfo
}

// Option configures an [Engine].
type Option func(*Engine)

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns a locked engine reading and creating its salt through s.
func New(s SaltStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:   s,
		logger:  log,
		scheme:  crypto.Current(),
		now:     time.Now,
		newSalt: crypto.GenerateSalt,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsSetup reports whether a salt has been persisted, i.e. whether the
// engine was ever unlocked on this installation. It never creates a salt.
func (e *Engine) IsSetup(ctx context.Context) (bool, error) {
	e.mu.RLock()
	cached := e.salt != nil
	e.mu.RUnlock()
	if cached {
		return true, nil
	}

	_, err := e.store.LoadSalt(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrSaltNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrSaltUnavailable, err)
	}
}

// Unlock derives the session key from passphrase and the persisted salt,
// creating and persisting a fresh random salt on first use. Any key held
// from an earlier Unlock is destroyed first, so a failed Unlock always
// leaves the engine locked.
//
// Unlock does not validate the passphrase: a wrong one yields a working
// key that simply fails to decrypt existing values.
func (e *Engine) Unlock(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lockLocked()

	salt, err := e.loadOrCreateSalt(ctx)
	if err != nil {
		return err
	}

	secret := []byte(passphrase)
	defer crypto.ClearBytes(secret)

	key, err := crypto.DeriveKey(secret, salt, e.scheme)
	if err != nil {
		e.logger.Error().Err(err).Str("func", "Engine.Unlock").Msg("key derivation failed")
		return fmt.Errorf("%w: %w", ErrDerivationFailure, err)
	}

	e.key = key
	e.session = SessionInfo{
		Fingerprint: crypto.Fingerprint(key),
		Scheme:      e.scheme.Version(),
		UnlockedAt:  e.now(),
	}

	e.logger.Info().
		Str("func", "Engine.Unlock").
		Str("fingerprint", e.session.Fingerprint).
		Msg("engine unlocked")
	return nil
}

// loadOrCreateSalt must be called with the write lock held. Two creators
// racing across processes converge on whichever salt was stored first.
func (e *Engine) loadOrCreateSalt(ctx context.Context) ([]byte, error) {
	if e.salt != nil {
		return e.salt, nil
	}

	salt, err := e.store.LoadSalt(ctx)
	if errors.Is(err, store.ErrSaltNotFound) {
		salt, err = e.createSalt(ctx)
	}
	if err != nil {
		e.logger.Error().Err(err).Str("func", "Engine.loadOrCreateSalt").Msg("salt unavailable")
		return nil, fmt.Errorf("%w: %w", ErrSaltUnavailable, err)
	}

	if len(salt) != e.scheme.SaltSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), e.scheme.SaltSize())
	}

	e.salt = salt
	return salt, nil
}

func (e *Engine) createSalt(ctx context.Context) ([]byte, error) {
	salt, err := e.newSalt(e.scheme)
	if err != nil {
		return nil, err
	}

	err = e.store.CreateSalt(ctx, salt)
	if errors.Is(err, store.ErrSaltAlreadyExists) {
		e.logger.Debug().Str("func", "Engine.createSalt").Msg("salt created concurrently, reloading")
		return e.store.LoadSalt(ctx)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Info().Str("func", "Engine.createSalt").Msg("new encryption salt persisted")
	return salt, nil
}

// Lock destroys the key and the session marker. It is safe to call on a
// locked engine.
func (e *Engine) Lock() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.key != nil {
		e.logger.Info().Str("func", "Engine.Lock").Msg("engine locked")
	}
	e.lockLocked()
}

func (e *Engine) lockLocked() {
	if e.key != nil {
		e.key.Destroy()
		e.key = nil
	}
	e.session = SessionInfo{}
}

// IsActive reports whether the engine currently holds a key.
func (e *Engine) IsActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.key != nil
}

// Session returns the marker of the current session; ok is false while
// locked.
func (e *Engine) Session() (info SessionInfo, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return SessionInfo{}, false
	}
	return e.session, true
}

// Encrypt seals plaintext under a fresh random nonce. Encrypting the same
// plaintext twice yields different values.
func (e *Engine) Encrypt(plaintext string) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return "", ErrNotUnlocked
	}
	return e.encrypt(plaintext)
}

func (e *Engine) encrypt(plaintext string) (string, error) {
	value, err := crypto.EncryptString(e.key, plaintext)
	if err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}
	return value, nil
}

// Decrypt returns the plaintext of value. Values without the encryption
// prefix are returned unchanged, even while locked. A prefixed value that
// cannot be decrypted yields [Sentinel] and a nil error; use
// [Engine.DecryptValue] to tell the two apart.
func (e *Engine) Decrypt(value string) (string, error) {
	d, err := e.DecryptValue(value)
	if err != nil {
		return "", err
	}
	return d.Text, nil
}

// DecryptValue is Decrypt with a structured result. The only error is
// [ErrNotUnlocked]; decryption failures are reported in the result.
func (e *Engine) DecryptValue(value string) (Decrypted, error) {
	if !crypto.IsEncrypted(value) {
		return Decrypted{Status: StatusPlain, Text: value}, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return Decrypted{}, ErrNotUnlocked
	}
	return e.decrypt(value, ""), nil
}

// decrypt must be called with the read lock held and a key present.
func (e *Engine) decrypt(value, field string) Decrypted {
	if !crypto.IsEncrypted(value) {
		return Decrypted{Status: StatusPlain, Text: value}
	}

	plaintext, err := crypto.DecryptString(e.key, value)
	if err != nil {
		ev := e.logger.Warn().Err(err).Str("func", "Engine.decrypt")
		if field != "" {
			ev = ev.Str("field", field)
		}
		ev.Msg("value could not be decrypted")

		return Decrypted{
			Status: StatusFailed,
			Text:   Sentinel,
			Cause:  fmt.Errorf("%w: %w", ErrDecryptionFailure, err),
		}
	}
	return Decrypted{Status: StatusDecrypted, Text: plaintext}
}
