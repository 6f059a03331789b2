// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE":           "/var/log/piivault.log",
		"APP_REQUIRE_ENCRYPTION": "true",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_ / BOLT_ / KEYRING_
		"STORAGE_BACKEND":         "bolt",
		"STORAGE_DB_DATABASE_URI": "/var/lib/piivault.db",
		"STORAGE_FILES_SALT_FILE": "/var/lib/salt.json",
		"STORAGE_BOLT_PATH":       "/var/lib/piivault.bolt",
		"STORAGE_KEYRING_SERVICE": "finance",
		"STORAGE_KEYRING_USER":    "salt",

		"RECORDS_PII_FIELDS": "accounts:name|notes,transactions:payee",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, App{LogFile: "/var/log/piivault.log", RequireEncryption: true}, cfg.App)

	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/piivault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/salt.json", cfg.Storage.Files.SaltFile)
	assert.Equal(t, "/var/lib/piivault.bolt", cfg.Storage.Bolt.Path)
	assert.Equal(t, Keyring{Service: "finance", User: "salt"}, cfg.Storage.Keyring)

	assert.Equal(t, map[string]string{
		"accounts":     "name|notes",
		"transactions": "payee",
	}, cfg.Records.PIIFields)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.Records.PIIFields)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"APP_REQUIRE_ENCRYPTION": "maybe"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LOG_FILE",
		"APP_REQUIRE_ENCRYPTION",

		"STORAGE_BACKEND",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_FILES_SALT_FILE",
		"STORAGE_BOLT_PATH",
		"STORAGE_KEYRING_SERVICE",
		"STORAGE_KEYRING_USER",

		"RECORDS_PII_FIELDS",
	}
	for _, k := range keys {
		if _, ok := os.LookupEnv(k); ok {
			t.Setenv(k, "")
		}
		_ = os.Unsetenv(k)
	}
}
