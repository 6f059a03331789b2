// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the global configuration flags on fs and returns the
// config they write into. The returned value is only meaningful after fs
// has been parsed; pass it to [GetStructuredConfig].
//
// Flags:
//
//	-c/--config    json file path with configs
//	--backend      salt storage backend (sqlite, bolt, file, keyring, memory)
//	--dsn          SQLite database DSN
//	--salt-file    JSON salt file path
//	--bolt-path    bbolt database path
//	--log-file     write logs to this file instead of stderr
//	--require-encryption  refuse to pass plaintext through while locked
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Salt storage backend: sqlite, bolt, file, keyring or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "SQLite database DSN")
	fs.StringVar(&cfg.Storage.Files.SaltFile, "salt-file", "", "JSON salt file path")
	fs.StringVar(&cfg.Storage.Bolt.Path, "bolt-path", "", "bbolt database path")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path (default stderr)")
	fs.BoolVar(&cfg.App.RequireEncryption, "require-encryption", false, "Fail instead of passing plaintext through while locked")

	return cfg
}
