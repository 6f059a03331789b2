// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Record is a single domain record (account, transaction, goal, ...) in the
// loosely typed shape it has on its way to or from the remote store.
// Values are whatever the JSON decoder produced; only string values of
// PII fields are ever touched by the encryption layer.
type Record map[string]any

// RecordType names a kind of record, e.g. "accounts" or "transactions".
type RecordType string

// FieldSet is the list of PII field keys that must be encrypted for one
// [RecordType]. The same list has to be used on every write and read of
// that type, otherwise encrypted and plaintext values get mixed.
type FieldSet []string

// Clone returns a shallow copy of r. Nested maps and slices are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Contains reports whether name is part of the set.
func (f FieldSet) Contains(name string) bool {
	for _, field := range f {
		if field == name {
			return true
		}
	}
	return false
}
