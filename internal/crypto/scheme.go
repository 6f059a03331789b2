// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strings"

// Marker starts every encrypted value, regardless of version.
const Marker = "ENC:"

// Scheme is one version of the encrypted value format together with the
// key derivation parameters that go with it. Schemes are only created by
// this package, so callers cannot weaken the iteration count.
type Scheme struct {
	version    string
	iterations int
	saltSize   int
	keySize    int
	nonceSize  int
	tagSize    int
}

var v1 = Scheme{
	version:    "v1",
	iterations: 100_000,
	saltSize:   16,
	keySize:    32,
	nonceSize:  12,
	tagSize:    16,
}

// schemes lists every format this build can read. New versions are added
// here and [Current] is switched once they become the write default.
var schemes = []Scheme{v1}

// Current returns the scheme used for new encryptions and key derivation.
func Current() Scheme {
	return v1
}

// LookupScheme returns the scheme registered under version, e.g. "v1".
func LookupScheme(version string) (Scheme, bool) {
	for _, s := range schemes {
		if s.version == version {
			return s, true
		}
	}
	return Scheme{}, false
}

// Version returns the wire tag of the scheme, e.g. "v1".
func (s Scheme) Version() string { return s.version }

// Iterations returns the PBKDF2 iteration count.
func (s Scheme) Iterations() int { return s.iterations }

// SaltSize returns the salt length in bytes.
func (s Scheme) SaltSize() int { return s.saltSize }

// KeySize returns the derived key length in bytes.
func (s Scheme) KeySize() int { return s.keySize }

// NonceSize returns the AES-GCM nonce length in bytes.
func (s Scheme) NonceSize() int { return s.nonceSize }

// TagSize returns the AES-GCM authentication tag length in bytes.
func (s Scheme) TagSize() int { return s.tagSize }

// Prefix returns the literal prefix of values written with this scheme,
// e.g. "ENC:v1:".
func (s Scheme) Prefix() string {
	return Marker + s.version + ":"
}

// schemeFor returns the registered scheme whose prefix value starts with.
func schemeFor(value string) (Scheme, bool) {
	for _, s := range schemes {
		if strings.HasPrefix(value, s.Prefix()) {
			return s, true
		}
	}
	return Scheme{}, false
}
