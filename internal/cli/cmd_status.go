// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/internal/crypto"
)

func newStatusCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show encryption setup state",
		Long: `Show the current encryption state including:
  - Whether a salt has been persisted (setup state)
  - Salt storage backend
  - Wire scheme new values are encrypted with
  - PII field sets per record type`,
		Args: cobra.NoArgs,
		RunE: a.run(a.runStatus),
	}
}

func (a *App) runStatus(ctx context.Context, cmd *cobra.Command, _ []string) error {
	setup, err := a.services.Engine.IsSetup(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()

	state := color.YellowString("not set up")
	if setup {
		state = color.GreenString("set up")
	}

	backend := a.cfg.Storage.Backend
	if backend == "" {
		backend = config.BackendSQLite
	}

	scheme := crypto.Current()

	fmt.Fprintf(out, "%s %s\n", bold("Encryption:"), state)
	fmt.Fprintf(out, "%s %s\n", bold("Backend:"), backend)
	fmt.Fprintf(out, "%s %s (PBKDF2-SHA256, %d iterations, AES-256-GCM)\n",
		bold("Scheme:"), scheme.Version(), scheme.Iterations())
	if a.cfg.App.RequireEncryption {
		fmt.Fprintf(out, "%s required\n", bold("Mode:"))
	}

	if !setup {
		fmt.Fprintf(out, "Run 'piivault init' to set up encryption.\n")
	}

	types := a.services.Registry.Types()
	if len(types) == 0 {
		fmt.Fprintf(out, "%s none\n", bold("PII fields:"))
		return nil
	}
	fmt.Fprintf(out, "%s\n", bold("PII fields:"))
	for _, t := range types {
		fmt.Fprintf(out, "  %s: %s\n", color.CyanString(string(t)), strings.Join(a.services.Registry.Fields(t), ", "))
	}
	return nil
}
