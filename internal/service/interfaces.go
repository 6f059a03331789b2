package service

import (
	"context"

	"github.com/MKhiriev/go-pii-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_service_mock.go -package=mock

// FieldEngine is the part of the encryption engine the record service
// needs. *engine.Engine implements it.
type FieldEngine interface {
	IsActive() bool
	EncryptFields(record models.Record, fields []string) (models.Record, error)
	DecryptFields(record models.Record, fields []string) models.Record
	DecryptFieldsChecked(record models.Record, fields []string) (models.Record, error)
	DecryptBatch(records []models.Record, fields []string) []models.Record
}

// RecordService routes domain records through the engine using the PII
// field set registered for their type, so every write and read of a type
// touches the same fields.
type RecordService interface {
	// Protect encrypts the PII fields of record before it is sent to the
	// remote store. While the engine is locked the record is returned
	// unchanged, unless the service requires an active engine, in which case
	// engine.ErrNotUnlocked is returned.
	Protect(ctx context.Context, recordType models.RecordType, record models.Record) (models.Record, error)

	// Reveal decrypts the PII fields of a record read back from the remote
	// store. Undecryptable fields read as engine.Sentinel.
	Reveal(ctx context.Context, recordType models.RecordType, record models.Record) models.Record

	// RevealAll is Reveal for a collection; one bad record never affects
	// the others.
	RevealAll(ctx context.Context, recordType models.RecordType, records []models.Record) []models.Record

	// RevealStrict is Reveal that fails with ErrUndecryptable when any PII
	// field could not be decrypted. The partially revealed record is
	// returned alongside the error.
	RevealStrict(ctx context.Context, recordType models.RecordType, record models.Record) (models.Record, error)
}
