package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or a missing path for the selected
	// backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRecordConfigs indicates an invalid PII field set
	// (for example, a record type without any field).
	ErrInvalidRecordConfigs = errors.New("invalid record configuration")
)
