// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command piivault encrypts and decrypts the PII fields of JSON records.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pii-vault/internal/app"
	"github.com/MKhiriev/go-pii-vault/internal/cli"
	"github.com/MKhiriev/go-pii-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand(info).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", app.UserMessage(err))
		os.Exit(1)
	}
}
