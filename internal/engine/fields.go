package engine

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pii-vault/internal/crypto"
	"github.com/MKhiriev/go-pii-vault/models"
)

// EncryptFields returns a shallow copy of record with every listed field
// that holds a non-empty string encrypted. Missing fields, non-string
// values and empty strings are copied as they are, as are values that
// already decrypt under the current key. Text that merely starts with the
// encryption prefix is encrypted like any other value. The input record
// is never modified.
//
// While the engine is locked the record is returned unchanged and the
// error is nil, so callers in optional-encryption mode keep working.
func (e *Engine) EncryptFields(record models.Record, fields []string) (models.Record, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return record, nil
	}
	return e.encryptFields(record, fields)
}

func (e *Engine) encryptFields(record models.Record, fields []string) (models.Record, error) {
	out := record.Clone()
	for _, field := range fields {
		s, ok := out[field].(string)
		if !ok || s == "" || e.opensWithKey(s) {
			continue
		}

		value, err := e.encrypt(s)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		out[field] = value
	}
	return out, nil
}

// opensWithKey reports whether s is a value sealed with the current key.
// It must be called with the read lock held and a key present.
func (e *Engine) opensWithKey(s string) bool {
	if !crypto.IsEncrypted(s) {
		return false
	}
	_, err := crypto.DecryptString(e.key, s)
	return err == nil
}

// DecryptFields returns a shallow copy of record with every listed string
// field decrypted. A field that cannot be decrypted becomes [Sentinel];
// the other fields are unaffected. While locked the record is returned
// unchanged.
func (e *Engine) DecryptFields(record models.Record, fields []string) models.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return record
	}
	out, _ := e.decryptFields(record, fields)
	return out
}

// DecryptFieldsChecked is DecryptFields that also reports failures. The
// returned record is the same one DecryptFields would produce; err joins
// one [*FieldError] per undecryptable field. While locked it returns the
// record unchanged, with [ErrNotUnlocked] if any listed field is
// encrypted.
func (e *Engine) DecryptFieldsChecked(record models.Record, fields []string) (models.Record, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		for _, field := range fields {
			if s, ok := record[field].(string); ok && crypto.IsEncrypted(s) {
				return record, ErrNotUnlocked
			}
		}
		return record, nil
	}
	return e.decryptFields(record, fields)
}

func (e *Engine) decryptFields(record models.Record, fields []string) (models.Record, error) {
	out := record.Clone()

	var errs []error
	for _, field := range fields {
		s, ok := out[field].(string)
		if !ok {
			continue
		}

		d := e.decrypt(s, field)
		if d.Failed() {
			errs = append(errs, &FieldError{Field: field, Err: d.Cause})
		}
		out[field] = d.Text
	}
	return out, errors.Join(errs...)
}

// DecryptBatch applies DecryptFields to every record under one read lock,
// so a concurrent Lock cannot take effect halfway through the batch. Each
// record is decrypted independently. While locked the input slice is
// returned as is.
func (e *Engine) DecryptBatch(records []models.Record, fields []string) []models.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.key == nil {
		return records
	}

	out := make([]models.Record, len(records))
	for i, record := range records {
		out[i], _ = e.decryptFields(record, fields)
	}
	return out
}
