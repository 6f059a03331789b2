// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsEncrypted reports whether value carries the prefix of a registered
// scheme. Values with an unknown version are treated as plaintext, so old
// builds pass future formats through untouched.
func IsEncrypted(value string) bool {
	_, ok := schemeFor(value)
	return ok
}

// EncodeEnvelope renders blob as the wire string of scheme s.
func EncodeEnvelope(s Scheme, blob []byte) string {
	return s.Prefix() + base64.StdEncoding.EncodeToString(blob)
}

// ParseEnvelope dispatches value on its version prefix and returns the
// matching scheme and the decoded nonce || ciphertext || tag blob.
func ParseEnvelope(value string) (Scheme, []byte, error) {
	s, ok := schemeFor(value)
	if !ok {
		if strings.HasPrefix(value, Marker) {
			return Scheme{}, nil, ErrUnknownVersion
		}
		return Scheme{}, nil, fmt.Errorf("%w: missing %q prefix", ErrMalformedValue, Marker)
	}

	blob, err := base64.StdEncoding.DecodeString(value[len(s.Prefix()):])
	if err != nil {
		return Scheme{}, nil, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	if len(blob) < s.nonceSize+s.tagSize {
		return Scheme{}, nil, fmt.Errorf("%w: %d bytes is shorter than nonce and tag", ErrMalformedValue, len(blob))
	}
	return s, blob, nil
}

// EncryptString seals plaintext under key with the current scheme and
// returns the wire string.
func EncryptString(key *SecretKey, plaintext string) (string, error) {
	s := Current()
	blob, err := Seal(key, s, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return EncodeEnvelope(s, blob), nil
}

// DecryptString parses a wire string and opens it under key.
func DecryptString(key *SecretKey, value string) (string, error) {
	s, blob, err := ParseEnvelope(value)
	if err != nil {
		return "", err
	}
	plaintext, err := Open(key, s, blob)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
