// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// randReader is the CSPRNG used for salts and nonces.
var randReader io.Reader = rand.Reader

// GenerateSalt reads a fresh random salt of the scheme's salt size from the
// OS CSPRNG. The salt is not secret; it only has to be unique per
// installation.
func GenerateSalt(s Scheme) ([]byte, error) {
	salt := make([]byte, s.saltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives the session key from passphrase and salt with
// PBKDF2-HMAC-SHA256 using the iteration count fixed by s. The same
// passphrase and salt always yield the same key.
func DeriveKey(passphrase, salt []byte, s Scheme) (*SecretKey, error) {
	if len(salt) != s.saltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), s.saltSize)
	}
	if s.iterations <= 0 || s.keySize <= 0 {
		return nil, fmt.Errorf("scheme %q is not registered", s.version)
	}

	key := pbkdf2.Key(passphrase, salt, s.iterations, s.keySize, sha256.New)
	return NewSecretKey(key), nil
}
