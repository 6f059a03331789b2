// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/config"
	"github.com/MKhiriev/go-pii-vault/models"
)

// NewRootCommand builds the piivault command tree.
func NewRootCommand(info models.AppBuildInfo, opts ...Option) *cobra.Command {
	a := newApp(info, opts...)

	root := &cobra.Command{
		Use:   "piivault",
		Short: "Client-side field-level encryption for PII",
		Long: `piivault encrypts the PII fields of records before they leave the
device and decrypts them after they come back. The key is derived from a
passphrase and a per-installation salt and is never stored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.String(),
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newStatusCommand(a),
		newInitCommand(a),
		newEncryptCommand(a),
		newDecryptCommand(a),
		newSealCommand(a),
		newOpenCommand(a),
		newVersionCommand(a),
	)

	return root
}
