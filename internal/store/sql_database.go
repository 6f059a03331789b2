package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pii-vault/internal/logger"
	"github.com/MKhiriev/go-pii-vault/migrations"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
