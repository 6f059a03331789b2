package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/engine"
	"github.com/MKhiriev/go-pii-vault/internal/service"
	"github.com/MKhiriev/go-pii-vault/internal/store"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"locked", fmt.Errorf("open: %w", engine.ErrNotUnlocked), MsgNotUnlocked},
		{"empty passphrase", engine.ErrEmptyPassphrase, MsgEmptyPassphrase},
		{"mismatch", ErrPassphraseMismatch, MsgPassphraseMismatch},
		{"already initialized", ErrAlreadyInitialized, MsgAlreadyInitialized},
		{"bad salt", fmt.Errorf("%w: %w", engine.ErrSaltUnavailable, store.ErrCorruptedSalt), MsgInvalidSalt},
		{"salt unavailable", fmt.Errorf("%w: boom", engine.ErrSaltUnavailable), MsgSaltUnavailable},
		{"derivation", engine.ErrDerivationFailure, MsgDerivationFailure},
		{"undecryptable", fmt.Errorf("%w: accounts", service.ErrUndecryptable), MsgUndecryptable},
		{"input", ErrInvalidInput, MsgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_IncludesDetailForConfigAndUnknownErrors(t *testing.T) {
	msg := UserMessage(fmt.Errorf("%w: unknown backend \"redis\"", config.ErrInvalidStorageConfigs))
	assert.True(t, strings.HasPrefix(msg, MsgInvalidConfig))
	assert.Contains(t, msg, "redis")

	msg = UserMessage(errors.New("socket closed"))
	assert.Equal(t, "socket closed", msg)
}
