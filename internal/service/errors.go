package service

import "errors"

var (
	// ErrUndecryptable is returned by RevealStrict when at least one PII
	// field of the record could not be decrypted.
	ErrUndecryptable = errors.New("record has undecryptable fields")

	// ErrUnknownRecordType is returned by FieldRegistry.Require for a type
	// without a registered field set.
	ErrUnknownRecordType = errors.New("unknown record type")
)
