// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const redacted = "[REDACTED]"

// fingerprintDomain separates session fingerprints from any other hash of
// the key material.
const fingerprintDomain = "pii-vault/session-fingerprint/v1"

// SecretKey owns symmetric key bytes for the lifetime of an unlocked
// session. It never prints, logs or marshals its contents.
type SecretKey struct {
	b []byte
}

// NewSecretKey takes ownership of b. The caller must not keep or reuse b.
func NewSecretKey(b []byte) *SecretKey {
	return &SecretKey{b: b}
}

// Len returns the key length in bytes, or 0 after Destroy.
func (k *SecretKey) Len() int {
	if k == nil {
		return 0
	}
	return len(k.b)
}

// Destroyed reports whether the key bytes have been wiped.
func (k *SecretKey) Destroyed() bool {
	return k == nil || k.b == nil
}

// Destroy zeroes the key bytes and drops them. Safe to call more than once.
func (k *SecretKey) Destroy() {
	if k == nil {
		return
	}
	ClearBytes(k.b)
	k.b = nil
}

// String implements fmt.Stringer without revealing the key.
func (k *SecretKey) String() string { return redacted }

// GoString implements fmt.GoStringer without revealing the key.
func (k *SecretKey) GoString() string { return redacted }

// Format implements fmt.Formatter so that no verb (%x included) leaks bytes.
func (k *SecretKey) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

// MarshalText keeps the key out of JSON and structured log output.
func (k *SecretKey) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Fingerprint returns a short, domain-separated SHA-256 digest of the key.
// It identifies a session key for display purposes and reveals nothing
// usable about the key itself. Returns "" for a destroyed key.
func Fingerprint(k *SecretKey) string {
	if k.Destroyed() {
		return ""
	}
	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write(k.b)
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// ClearBytes overwrites b with zeros.
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
