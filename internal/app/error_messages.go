// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// piivault command line.
//
// All Msg* constants are human-readable message strings printed to the
// terminal to describe the outcome of an operation. Keeping them in one
// place ensures consistent wording across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/engine"
	"github.com/MKhiriev/go-pii-vault/internal/service"
	"github.com/MKhiriev/go-pii-vault/internal/store"
)

const (
	// MsgNotUnlocked is shown when a command needs a key but the vault is
	// locked.
	MsgNotUnlocked = "vault is locked: unlock it with your passphrase first"

	// MsgEmptyPassphrase is shown when no passphrase was entered.
	MsgEmptyPassphrase = "passphrase must not be empty"

	// MsgPassphraseMismatch is shown when the confirmation prompt does not
	// match the first entry.
	MsgPassphraseMismatch = "passphrases do not match"

	// MsgAlreadyInitialized is shown by init on an installation that
	// already has a salt.
	MsgAlreadyInitialized = "encryption is already set up on this installation"

	// MsgSaltUnavailable is shown when the salt storage cannot be read or
	// written.
	MsgSaltUnavailable = "encryption salt storage is unavailable"

	// MsgInvalidSalt is shown when the persisted salt is damaged.
	MsgInvalidSalt = "persisted encryption salt is damaged"

	// MsgDerivationFailure is shown when the key could not be derived.
	MsgDerivationFailure = "key derivation failed"

	// MsgUndecryptable is shown by strict reads that hit a value that
	// could not be decrypted. A wrong passphrase is the usual cause.
	MsgUndecryptable = "some values could not be decrypted (wrong passphrase or corrupted data)"

	// MsgInvalidInput is shown when stdin is not a JSON object or array of
	// objects.
	MsgInvalidInput = "input must be a JSON object or an array of JSON objects"

	// MsgInvalidConfig is shown when the merged configuration is invalid.
	MsgInvalidConfig = "invalid configuration"
)

// Errors raised by the command line itself.
var (
	ErrPassphraseMismatch = errors.New(MsgPassphraseMismatch)
	ErrAlreadyInitialized = errors.New(MsgAlreadyInitialized)
	ErrInvalidInput       = errors.New(MsgInvalidInput)
)

// UserMessage maps err to the message shown to the user. Errors without a
// dedicated message, such as usage errors, are shown as they are.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, engine.ErrNotUnlocked):
		return MsgNotUnlocked
	case errors.Is(err, engine.ErrEmptyPassphrase):
		return MsgEmptyPassphrase
	case errors.Is(err, ErrPassphraseMismatch):
		return MsgPassphraseMismatch
	case errors.Is(err, ErrAlreadyInitialized):
		return MsgAlreadyInitialized
	case errors.Is(err, engine.ErrInvalidSalt), errors.Is(err, store.ErrCorruptedSalt):
		return MsgInvalidSalt
	case errors.Is(err, engine.ErrSaltUnavailable), errors.Is(err, store.ErrOpeningStorage):
		return MsgSaltUnavailable
	case errors.Is(err, engine.ErrDerivationFailure):
		return MsgDerivationFailure
	case errors.Is(err, service.ErrUndecryptable), errors.Is(err, engine.ErrDecryptionFailure):
		return MsgUndecryptable
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, config.ErrInvalidStorageConfigs), errors.Is(err, config.ErrInvalidRecordConfigs),
		errors.Is(err, store.ErrUnknownBackend):
		return MsgInvalidConfig + ": " + err.Error()
	default:
		return err.Error()
	}
}
