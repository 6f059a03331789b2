// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the stateless primitives of field-level encryption.
//
// Every encrypted field value is a self-describing string:
//
//	"ENC:" + version + ":" + base64(nonce || ciphertext || tag)
//
// The version tag selects a [Scheme], which fixes every cryptographic
// parameter of the format. The only scheme today is v1:
//   - key derivation: PBKDF2-HMAC-SHA256, 100 000 iterations, 16-byte salt
//   - cipher: AES-256-GCM, 12-byte random nonce, 16-byte tag
//   - encoding: standard base64 alphabet with padding
//
// Key material is carried in [SecretKey], which redacts itself in any
// formatted or marshalled output and is zeroed by [SecretKey.Destroy].
package crypto
