// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// newGCM builds an AES-GCM AEAD for key, checking the key against s.
func newGCM(key *SecretKey, s Scheme) (cipher.AEAD, error) {
	if key.Destroyed() || key.Len() != s.keySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key.b)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, s.nonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal encrypts plaintext with AES-256-GCM under a fresh random nonce and
// returns nonce || ciphertext || tag. A nonce is never reused: every call
// reads a new one from the CSPRNG.
func Seal(key *SecretKey, s Scheme, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, s)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, s.nonceSize, s.nonceSize+len(plaintext)+gcm.Overhead())
	if _, err := io.ReadFull(randReader, blob); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext+tag directly after the nonce.
	return gcm.Seal(blob, blob[:s.nonceSize], plaintext, nil), nil
}

// Open splits blob into nonce and ciphertext+tag, then decrypts and
// authenticates it. Returns [ErrMalformedValue] if blob is too short and
// [ErrAuthFailed] on a tag mismatch.
func Open(key *SecretKey, s Scheme, blob []byte) ([]byte, error) {
	if len(blob) < s.nonceSize+s.tagSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than nonce and tag", ErrMalformedValue, len(blob))
	}

	gcm, err := newGCM(key, s)
	if err != nil {
		return nil, err
	}

	nonce, ciphertext := blob[:s.nonceSize], blob[s.nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}
