// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"
	"sort"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/models"
)

// FieldRegistry maps record types to their PII field sets. It is read-only
// after construction.
type FieldRegistry struct {
	sets map[models.RecordType]models.FieldSet
}

// NewFieldRegistry copies sets into a new registry.
func NewFieldRegistry(sets map[models.RecordType]models.FieldSet) *FieldRegistry {
	r := &FieldRegistry{sets: make(map[models.RecordType]models.FieldSet, len(sets))}
	for recordType, fields := range sets {
		r.sets[recordType] = slices.Clone(fields)
	}
	return r
}

// NewFieldRegistryFromConfig builds the registry from the configured
// field sets.
func NewFieldRegistryFromConfig(cfg config.Records) *FieldRegistry {
	return NewFieldRegistry(cfg.FieldSets())
}

// Fields returns the field set of recordType. Unknown types have an empty
// set, so their records pass through untouched.
func (r *FieldRegistry) Fields(recordType models.RecordType) models.FieldSet {
	return slices.Clone(r.sets[recordType])
}

// Require is Fields for callers that must not silently skip encryption of
// a mistyped record type.
func (r *FieldRegistry) Require(recordType models.RecordType) (models.FieldSet, error) {
	fields, ok := r.sets[recordType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, recordType)
	}
	return slices.Clone(fields), nil
}

// Types returns the registered record types in sorted order.
func (r *FieldRegistry) Types() []models.RecordType {
	types := make([]models.RecordType, 0, len(r.sets))
	for recordType := range r.sets {
		types = append(types, recordType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
