// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/app"
	"github.com/MKhiriev/go-pii-vault/internal/crypto"
)

func newInitCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up encryption on this installation",
		Long: `Prompt for a passphrase twice and unlock for the first time, which
generates and persists the installation salt. The passphrase itself is
never stored; it must be entered again on every run.`,
		Args: cobra.NoArgs,
		RunE: a.run(a.runInit),
	}
}

func (a *App) runInit(ctx context.Context, cmd *cobra.Command, _ []string) error {
	setup, err := a.services.Engine.IsSetup(ctx)
	if err != nil {
		return err
	}
	if setup {
		return app.ErrAlreadyInitialized
	}

	first, err := a.passphrases.ReadPassphrase("New passphrase: ")
	if err != nil {
		return err
	}
	second, err := a.passphrases.ReadPassphrase("Confirm passphrase: ")
	if err != nil {
		crypto.ClearBytes(first)
		return err
	}
	defer crypto.ClearBytes(second)

	if subtle.ConstantTimeCompare(first, second) != 1 {
		crypto.ClearBytes(first)
		return app.ErrPassphraseMismatch
	}

	if err := a.unlockWith(ctx, first, newProgress(cmd.ErrOrStderr(), a.spinner)); err != nil {
		return err
	}

	info, _ := a.services.Engine.Session()
	fmt.Fprintf(cmd.OutOrStdout(), "%s key fingerprint %s (scheme %s)\n",
		color.GreenString("Encryption set up:"), info.Fingerprint, info.Scheme)
	return nil
}
