// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-pii-vault/models"
)

// Storage backend names accepted by [Storage.Backend].
const (
	BackendSQLite  = "sqlite"
	BackendBolt    = "bolt"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// fieldListSeparator separates field names inside one record type entry of
// [Records.PIIFields], e.g. "description|notes".
const fieldListSeparator = "|"

// StructuredConfig is the top-level configuration container for the
// go-pii-vault application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// The encryption passphrase has no field here. It is never read from
// configuration.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the durable store of the encryption
	// salt.
	Storage Storage `envPrefix:"STORAGE_"`

	// Records holds the PII field sets of every record type.
	Records Records `envPrefix:"RECORDS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile, when set, redirects structured logs from stderr to a file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// RequireEncryption makes record protection fail instead of passing
	// plaintext through while the engine is locked.
	// Env: APP_REQUIRE_ENCRYPTION
	RequireEncryption bool `env:"REQUIRE_ENCRYPTION"`
}

// Storage groups the configuration for all salt storage backends. Only the
// section of the selected backend is used.
type Storage struct {
	// Backend is one of "sqlite", "bolt", "file", "keyring" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON salt file settings.
	Files Files `envPrefix:"FILES_"`

	// Bolt holds the bbolt database settings.
	Bolt Bolt `envPrefix:"BOLT_"`

	// Keyring holds the OS keyring entry coordinates.
	Keyring Keyring `envPrefix:"KEYRING_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the JSON file salt store.
type Files struct {
	// SaltFile is the path of the JSON document holding encryption_salt.
	// Env: STORAGE_FILES_SALT_FILE
	SaltFile string `env:"SALT_FILE"`
}

// Bolt holds settings of the bbolt salt store.
type Bolt struct {
	// Path is the bbolt database file.
	// Env: STORAGE_BOLT_PATH
	Path string `env:"PATH"`
}

// Keyring holds the service/user pair under which the salt is kept in the
// OS keyring.
type Keyring struct {
	// Env: STORAGE_KEYRING_SERVICE
	Service string `env:"SERVICE"`
	// Env: STORAGE_KEYRING_USER
	User string `env:"USER"`
}

// Records describes which fields of which record types carry PII.
type Records struct {
	// PIIFields maps a record type to its "|"-separated field list.
	// Env: RECORDS_PII_FIELDS="accounts:name|notes,transactions:description|notes"
	PIIFields map[string]string `env:"PII_FIELDS"`
}

// FieldSets expands [Records.PIIFields] into typed field sets. Blank field
// names are dropped and every set is sorted, so the same configuration
// always yields the same list.
func (r Records) FieldSets() map[models.RecordType]models.FieldSet {
	sets := make(map[models.RecordType]models.FieldSet, len(r.PIIFields))
	for recordType, list := range r.PIIFields {
		sets[models.RecordType(strings.TrimSpace(recordType))] = splitFields(list)
	}
	return sets
}

func splitFields(list string) models.FieldSet {
	fields := make(models.FieldSet, 0, 4)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(list, fieldListSeparator) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func joinFields(fields []string) string {
	return strings.Join(fields, fieldListSeparator)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. flagCfg is the config bound to the command line by
// [BindFlags] and may be nil. Sources are merged in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
