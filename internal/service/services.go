package service

import (
	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/engine"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
)

// Services wires the encryption engine and the record service of one
// application instance.
type Services struct {
	Engine   *engine.Engine
	Registry *FieldRegistry
	Records  RecordService
}

func NewServices(cfg *config.StructuredConfig, saltStore engine.SaltStore, logger *logger.Logger) *Services {
	e := engine.New(saltStore, logger.GetChildLogger())
	registry := NewFieldRegistryFromConfig(cfg.Records)

	return &Services{
		Engine:   e,
		Registry: registry,
		Records:  NewRecordService(e, registry, logger, RequireActive(cfg.App.RequireEncryption)),
	}
}
