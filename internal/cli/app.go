// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/crypto"
	"github.com/MKhiriev/go-pii-vault/internal/logger"
	"github.com/MKhiriev/go-pii-vault/internal/service"
	"github.com/MKhiriev/go-pii-vault/internal/store"
	"github.com/MKhiriev/go-pii-vault/internal/utils"
	"github.com/MKhiriev/go-pii-vault/models"
)

// App is the state of one piivault run. It is populated by the root
// command's pre-run hook and torn down by its post-run hook.
type App struct {
	buildInfo   models.AppBuildInfo
	passphrases PassphraseSource
	spinner     bool

	flags *config.StructuredConfig
	debug bool

	cfg       *config.StructuredConfig
	logger    *logger.Logger
	logCloser io.Closer
	store     store.SaltStore
	services  *service.Services

	// fixed logger injected through WithLogger; nil means build from config
	fixedLogger *logger.Logger
}

// Option configures the root command.
type Option func(*App)

// WithPassphraseSource replaces the default environment/terminal
// passphrase source.
func WithPassphraseSource(src PassphraseSource) Option {
	return func(a *App) {
		a.passphrases = src
	}
}

// WithLogger makes every run log to l instead of a logger built from the
// configuration.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.fixedLogger = l
	}
}

// WithoutSpinner disables the progress spinner shown while a key is
// derived.
func WithoutSpinner() Option {
	return func(a *App) {
		a.spinner = false
	}
}

func newApp(info models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo:   info,
		passphrases: NewDefaultPassphraseSource(),
		spinner:     true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// start loads the configuration and builds the logger, salt store and
// services. The returned context carries the run logger and run ID.
func (a *App) start(ctx context.Context) (context.Context, error) {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return ctx, fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg

	log, err := a.buildLogger()
	if err != nil {
		return ctx, err
	}

	runID := utils.NewUUIDGenerator().Generate()
	a.logger = &logger.Logger{Logger: log.With().Str("run_id", runID).Logger()}
	ctx = a.logger.WithContext(utils.WithRunID(ctx, runID))

	saltStore, err := store.NewSaltStore(ctx, cfg.Storage, a.logger)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", store.ErrOpeningStorage, err)
	}
	a.store = saltStore
	a.services = service.NewServices(cfg, saltStore, a.logger)

	a.logger.Debug().Str("func", "App.start").Str("backend", cfg.Storage.Backend).Msg("run started")
	return ctx, nil
}

func (a *App) buildLogger() (*logger.Logger, error) {
	if a.fixedLogger != nil {
		return a.fixedLogger, nil
	}

	var log *logger.Logger
	if a.cfg.App.LogFile != "" {
		fileLogger, closer, err := logger.NewFileLogger("piivault", a.cfg.App.LogFile)
		if err != nil {
			return nil, err
		}
		log = fileLogger
		a.logCloser = closer
	} else {
		log = logger.NewLogger("piivault")
	}

	if a.debug {
		return log.WithLevel(zerolog.DebugLevel), nil
	}
	return log.WithLevel(zerolog.WarnLevel), nil
}

// stop locks the engine, closes the salt store and releases the log file.
// It is safe to call on a run that never started.
func (a *App) stop() error {
	if a.services != nil {
		a.services.Engine.Lock()
	}

	var err error
	if a.store != nil {
		if closeErr := a.store.Close(); closeErr != nil {
			err = fmt.Errorf("close salt store: %w", closeErr)
		}
	}
	if a.logCloser != nil {
		if closeErr := a.logCloser.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close log file: %w", closeErr))
		}
	}

	a.services = nil
	a.store = nil
	a.logCloser = nil
	return err
}

// unlock reads a passphrase and unlocks the engine with it.
func (a *App) unlock(ctx context.Context, progress *progress) error {
	passphrase, err := a.passphrases.ReadPassphrase("Passphrase: ")
	if err != nil {
		return err
	}
	return a.unlockWith(ctx, passphrase, progress)
}

func (a *App) unlockWith(ctx context.Context, passphrase []byte, progress *progress) error {
	defer crypto.ClearBytes(passphrase)

	progress.start(" Deriving key...")
	err := a.services.Engine.Unlock(ctx, string(passphrase))
	progress.stop()

	if err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	return nil
}

// runFunc is the body of a command that needs a started run.
type runFunc func(ctx context.Context, cmd *cobra.Command, args []string) error

// run wraps fn so that the run is started before it and stopped after it,
// whatever fn returns.
func (a *App) run(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if stopErr := a.stop(); stopErr != nil {
				err = errors.Join(err, stopErr)
			}
		}()

		ctx, err := a.start(cmd.Context())
		if err != nil {
			return err
		}
		return fn(ctx, cmd, args)
	}
}
