package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pii-vault/internal/engine"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
	"github.com/MKhiriev/go-pii-vault/models"
)

type recordService struct {
	engine        FieldEngine
	registry      *FieldRegistry
	requireActive bool

	logger *logger.Logger
}

// RecordOption configures the record service.
type RecordOption func(*recordService)

// RequireActive makes Protect fail with engine.ErrNotUnlocked instead of
// passing plaintext through while the engine is locked.
func RequireActive(required bool) RecordOption {
	return func(s *recordService) {
		s.requireActive = required
	}
}

func NewRecordService(fieldEngine FieldEngine, registry *FieldRegistry, logger *logger.Logger, opts ...RecordOption) RecordService {
	s := &recordService{
		engine:   fieldEngine,
		registry: registry,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *recordService) Protect(ctx context.Context, recordType models.RecordType, record models.Record) (models.Record, error) {
	log := logger.FromContextOr(ctx, s.logger)

	fields := s.registry.Fields(recordType)
	if len(fields) == 0 {
		return record, nil
	}

	if !s.engine.IsActive() {
		if s.requireActive {
			log.Warn().Str("func", "recordService.Protect").Str("record_type", string(recordType)).
				Msg("refusing to pass plaintext through a locked engine")
			return nil, engine.ErrNotUnlocked
		}
		log.Debug().Str("func", "recordService.Protect").Str("record_type", string(recordType)).
			Msg("engine locked, record passed through unencrypted")
		return record, nil
	}

	protected, err := s.engine.EncryptFields(record, fields)
	if err != nil {
		log.Err(err).Str("func", "recordService.Protect").Str("record_type", string(recordType)).
			Msg("failed to encrypt record fields")
		return nil, fmt.Errorf("protect %s record: %w", recordType, err)
	}
	return protected, nil
}

func (s *recordService) Reveal(ctx context.Context, recordType models.RecordType, record models.Record) models.Record {
	fields := s.registry.Fields(recordType)
	if len(fields) == 0 {
		return record
	}
	return s.engine.DecryptFields(record, fields)
}

func (s *recordService) RevealAll(ctx context.Context, recordType models.RecordType, records []models.Record) []models.Record {
	fields := s.registry.Fields(recordType)
	if len(fields) == 0 {
		return records
	}
	return s.engine.DecryptBatch(records, fields)
}

func (s *recordService) RevealStrict(ctx context.Context, recordType models.RecordType, record models.Record) (models.Record, error) {
	log := logger.FromContextOr(ctx, s.logger)

	fields := s.registry.Fields(recordType)
	if len(fields) == 0 {
		return record, nil
	}

	revealed, err := s.engine.DecryptFieldsChecked(record, fields)
	if err == nil {
		return revealed, nil
	}
	if errors.Is(err, engine.ErrNotUnlocked) {
		return revealed, err
	}

	failed := failedFields(err)
	log.Warn().Str("func", "recordService.RevealStrict").Str("record_type", string(recordType)).
		Strs("fields", failed).Msg("record has undecryptable fields")
	return revealed, fmt.Errorf("%w: %s %v: %w", ErrUndecryptable, recordType, failed, err)
}

// failedFields lists the field names carried by the joined FieldErrors in
// err.
func failedFields(err error) []string {
	var names []string
	var fieldErr *engine.FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if errors.As(e, &fieldErr) {
				names = append(names, fieldErr.Field)
			}
		}
		return names
	}
	if errors.As(err, &fieldErr) {
		names = append(names, fieldErr.Field)
	}
	return names
}
