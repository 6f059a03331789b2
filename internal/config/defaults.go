// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "piivault"

// defaultPIIFields are the field sets of the finance tracker's record
// types. Amounts, dates and categories stay plaintext for analytics.
var defaultPIIFields = map[string][]string{
	"accounts":     {"name", "notes"},
	"transactions": {"description", "notes", "payee"},
	"goals":        {"name", "notes"},
}

// defaultConfig returns the lowest-priority config layer. Local state lives
// under the user config directory, e.g. ~/.config/piivault on Linux.
func defaultConfig() (*StructuredConfig, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, appDirName)

	fields := make(map[string]string, len(defaultPIIFields))
	for recordType, list := range defaultPIIFields {
		fields[recordType] = joinFields(list)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend: BackendSQLite,
			DB:      DB{DSN: filepath.Join(dir, "piivault.db")},
			Files:   Files{SaltFile: filepath.Join(dir, "salt.json")},
			Bolt:    Bolt{Path: filepath.Join(dir, "piivault.bolt")},
			Keyring: Keyring{Service: appDirName, User: "encryption_salt"},
		},
		Records: Records{PIIFields: fields},
	}, nil
}
