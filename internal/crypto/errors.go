// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKey is returned when a key does not match the scheme key
	// size or has already been destroyed.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrInvalidSalt is returned when a salt does not have the length the
	// scheme requires.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrUnknownVersion is returned when a value carries the "ENC:" marker
	// with a version tag no registered scheme handles.
	ErrUnknownVersion = errors.New("unknown encrypted value version")

	// ErrMalformedValue is returned when the payload after the version
	// prefix is not valid base64 or is too short to hold nonce and tag.
	ErrMalformedValue = errors.New("malformed encrypted value")

	// ErrAuthFailed is returned when GCM authentication fails: wrong key,
	// corrupted bytes or tampered ciphertext.
	ErrAuthFailed = errors.New("authentication failed")
)
