// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/base64"
	"fmt"
)

// SaltKey is the name under which every backend persists the salt.
const SaltKey = "encryption_salt"

// encodeSalt returns the persisted form of salt: standard base64 with
// padding.
func encodeSalt(salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", ErrEmptySalt
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

func decodeSalt(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrCorruptedSalt
	}
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedSalt, err)
	}
	return salt, nil
}
