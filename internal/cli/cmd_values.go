// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/service"
)

func newSealCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "seal <text>",
		Short:   "Encrypt a single value",
		Example: `  piivault seal "Jane Doe"`,
		Args:    cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.unlock(ctx, newProgress(cmd.ErrOrStderr(), a.spinner)); err != nil {
				return err
			}

			value, err := a.services.Engine.Encrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}),
	}
}

func newOpenCommand(a *App) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "open <value>",
		Short: "Decrypt a single value",
		Long: `Decrypt a single value. Values without the encryption marker are
printed unchanged. A value that cannot be decrypted prints as
"[Encrypted]" unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.unlock(ctx, newProgress(cmd.ErrOrStderr(), a.spinner)); err != nil {
				return err
			}

			result, err := a.services.Engine.DecryptValue(args[0])
			if err != nil {
				return err
			}
			if strict && result.Failed() {
				return fmt.Errorf("%w: %w", service.ErrUndecryptable, result.Cause)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of printing the placeholder")
	return cmd
}

func newVersionCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())
			return nil
		},
	}
}
