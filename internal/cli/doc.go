// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the piivault command line on top of cobra.
//
// Every command runs in one short-lived session: the root command loads
// the merged configuration, opens the configured salt store and builds the
// services; commands that need a key unlock the engine with a passphrase
// taken from PIIVAULT_PASSPHRASE or the terminal; the engine is locked and
// the store closed when the command returns.
//
// Records are read from stdin as a JSON object or an array of objects and
// written to stdout in the same shape. Logs and prompts go to stderr.
package cli
