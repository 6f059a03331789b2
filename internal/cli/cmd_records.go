// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pii-vault/internal/service"
	"github.com/MKhiriev/go-pii-vault/models"
)

// recordFlags selects which fields of the input records are processed.
type recordFlags struct {
	recordType string
	fields     []string
	strict     bool
}

func (f *recordFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.recordType, "type", "t", "", "Record type whose configured PII fields are processed")
	cmd.Flags().StringSliceVarP(&f.fields, "fields", "f", nil, "Comma-separated field list overriding the configured set")
}

// resolve checks that the flags name a usable field set.
func (f *recordFlags) resolve(registry *service.FieldRegistry) error {
	if len(f.fields) > 0 {
		return nil
	}
	if f.recordType == "" {
		return errors.New("either --type or --fields is required")
	}
	_, err := registry.Require(models.RecordType(f.recordType))
	return err
}

func newEncryptCommand(a *App) *cobra.Command {
	flags := &recordFlags{}
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt the PII fields of JSON records read from stdin",
		Long: `Read a JSON object or an array of JSON objects from stdin and write it
to stdout with the PII fields encrypted. Fields that are missing, empty
or not strings are left as they are, as are values already encrypted
with the same passphrase.`,
		Example: `  echo '{"id":1,"name":"Savings","balance":100}' | piivault encrypt --type accounts`,
		Args:    cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			return a.runEncrypt(ctx, cmd, flags)
		}),
	}
	flags.bind(cmd)
	return cmd
}

func (a *App) runEncrypt(ctx context.Context, cmd *cobra.Command, flags *recordFlags) error {
	if err := flags.resolve(a.services.Registry); err != nil {
		return err
	}

	in, err := readRecords(cmd.InOrStdin())
	if err != nil {
		return err
	}

	if err := a.unlock(ctx, newProgress(cmd.ErrOrStderr(), a.spinner)); err != nil {
		return err
	}

	out := make([]models.Record, 0, len(in.records))
	for i, record := range in.records {
		var encrypted models.Record
		if len(flags.fields) > 0 {
			encrypted, err = a.services.Engine.EncryptFields(record, flags.fields)
		} else {
			encrypted, err = a.services.Records.Protect(ctx, models.RecordType(flags.recordType), record)
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, encrypted)
	}

	return writeRecords(cmd.OutOrStdout(), in, out)
}

func newDecryptCommand(a *App) *cobra.Command {
	flags := &recordFlags{}
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt the PII fields of JSON records read from stdin",
		Long: `Read a JSON object or an array of JSON objects from stdin and write it
to stdout with the PII fields decrypted. Values that cannot be decrypted
read as "[Encrypted]"; with --strict the command fails instead and
writes nothing.`,
		Example: `  piivault decrypt --type accounts < accounts.json`,
		Args:    cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			return a.runDecrypt(ctx, cmd, flags)
		}),
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when any field cannot be decrypted")
	return cmd
}

func (a *App) runDecrypt(ctx context.Context, cmd *cobra.Command, flags *recordFlags) error {
	if err := flags.resolve(a.services.Registry); err != nil {
		return err
	}

	in, err := readRecords(cmd.InOrStdin())
	if err != nil {
		return err
	}

	if err := a.unlock(ctx, newProgress(cmd.ErrOrStderr(), a.spinner)); err != nil {
		return err
	}

	var out []models.Record
	if flags.strict {
		out, err = a.decryptStrict(ctx, in.records, flags)
		if err != nil {
			return err
		}
	} else if len(flags.fields) > 0 {
		out = a.services.Engine.DecryptBatch(in.records, flags.fields)
	} else {
		out = a.services.Records.RevealAll(ctx, models.RecordType(flags.recordType), in.records)
	}

	return writeRecords(cmd.OutOrStdout(), in, out)
}

func (a *App) decryptStrict(ctx context.Context, records []models.Record, flags *recordFlags) ([]models.Record, error) {
	out := make([]models.Record, 0, len(records))
	var errs []error
	for i, record := range records {
		var (
			revealed models.Record
			err      error
		)
		if len(flags.fields) > 0 {
			revealed, err = a.services.Engine.DecryptFieldsChecked(record, flags.fields)
			if err != nil {
				err = fmt.Errorf("%w: %w", service.ErrUndecryptable, err)
			}
		} else {
			revealed, err = a.services.Records.RevealStrict(ctx, models.RecordType(flags.recordType), record)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		out = append(out, revealed)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
