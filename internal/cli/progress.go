// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// progress shows a spinner on w while a slow step runs. It stays silent
// when disabled or when w is not a terminal.
type progress struct {
	s *spinner.Spinner
}

func newProgress(w io.Writer, enabled bool) *progress {
	f, ok := w.(*os.File)
	if !enabled || !ok || !term.IsTerminal(int(f.Fd())) {
		return &progress{}
	}
	return &progress{s: spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))}
}

func (p *progress) start(suffix string) {
	if p == nil || p.s == nil {
		return
	}
	p.s.Suffix = suffix
	p.s.Start()
}

func (p *progress) stop() {
	if p == nil || p.s == nil {
		return
	}
	p.s.Stop()
}
