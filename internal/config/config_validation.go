// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the package validation sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	return cfg.Records.validate()
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendSQLite:
		if s.DB.DSN == "" || strings.Contains(s.DB.DSN, ":memory:") {
			return fmt.Errorf("%w: sqlite backend needs a file DSN", ErrInvalidStorageConfigs)
		}
	case BackendBolt:
		if s.Bolt.Path == "" {
			return fmt.Errorf("%w: bolt backend needs a path", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if s.Files.SaltFile == "" {
			return fmt.Errorf("%w: file backend needs a salt file", ErrInvalidStorageConfigs)
		}
	case BackendKeyring:
		if s.Keyring.Service == "" || s.Keyring.User == "" {
			return fmt.Errorf("%w: keyring backend needs service and user", ErrInvalidStorageConfigs)
		}
	case BackendMemory, "":
		// "" only occurs when validating a partial layer
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}
	return nil
}

func (r Records) validate() error {
	for recordType, fields := range r.FieldSets() {
		if recordType == "" {
			return fmt.Errorf("%w: empty record type", ErrInvalidRecordConfigs)
		}
		if len(fields) == 0 {
			return fmt.Errorf("%w: record type %q has no fields", ErrInvalidRecordConfigs, recordType)
		}
	}
	return nil
}
