package config

import (
	"testing"

	"github.com/MKhiriev/go-pii-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_FieldSets(t *testing.T) {
	r := Records{PIIFields: map[string]string{
		"transactions": " payee | notes||description|notes ",
		" goals ":      "name",
	}}

	sets := r.FieldSets()

	require.Len(t, sets, 2)
	assert.Equal(t, models.FieldSet{"description", "notes", "payee"}, sets["transactions"])
	assert.Equal(t, models.FieldSet{"name"}, sets["goals"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "memory backend",
			cfg:  StructuredConfig{Storage: Storage{Backend: BackendMemory}},
		},
		{
			name: "sqlite with file",
			cfg:  StructuredConfig{Storage: Storage{Backend: BackendSQLite, DB: DB{DSN: "/tmp/a.db"}}},
		},
		{
			name:    "sqlite in memory rejected",
			cfg:     StructuredConfig{Storage: Storage{Backend: BackendSQLite, DB: DB{DSN: "file::memory:?cache=shared"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "bolt without path",
			cfg:     StructuredConfig{Storage: Storage{Backend: BackendBolt}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "file without salt file",
			cfg:     StructuredConfig{Storage: Storage{Backend: BackendFile}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "keyring without user",
			cfg:     StructuredConfig{Storage: Storage{Backend: BackendKeyring, Keyring: Keyring{Service: "s"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown backend",
			cfg:     StructuredConfig{Storage: Storage{Backend: "redis"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "record type without fields",
			cfg: StructuredConfig{
				Storage: Storage{Backend: BackendMemory},
				Records: Records{PIIFields: map[string]string{"accounts": " | "}},
			},
			wantErr: ErrInvalidRecordConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
