// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

// PassphraseEnv names the environment variable a passphrase is read from
// before falling back to an interactive prompt.
const PassphraseEnv = "PIIVAULT_PASSPHRASE"

// PassphraseSource supplies passphrases. The caller owns the returned
// slice and clears it once the key has been derived.
type PassphraseSource interface {
	ReadPassphrase(prompt string) ([]byte, error)
}

// defaultPassphraseSource reads PIIVAULT_PASSPHRASE and otherwise prompts
// on the controlling terminal, so stdin stays free for record input.
type defaultPassphraseSource struct {
	prompts io.Writer
}

// NewDefaultPassphraseSource returns the environment/terminal source.
func NewDefaultPassphraseSource() PassphraseSource {
	return &defaultPassphraseSource{prompts: os.Stderr}
}

func (s *defaultPassphraseSource) ReadPassphrase(prompt string) ([]byte, error) {
	if p, ok := os.LookupEnv(PassphraseEnv); ok {
		return []byte(p), nil
	}
	return s.readFromTTY(prompt)
}

func (s *defaultPassphraseSource) readFromTTY(prompt string) ([]byte, error) {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}

	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input (set %s instead): %w", ttyPath, PassphraseEnv, err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", ttyPath)
	}

	fmt.Fprint(s.prompts, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(s.prompts)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// StaticPassphrases is a PassphraseSource that hands out the given
// passphrases in order and then keeps returning the last one. It is meant
// for scripting and tests.
type StaticPassphrases struct {
	values []string
	next   int
}

// NewStaticPassphrases returns a source replaying values.
func NewStaticPassphrases(values ...string) *StaticPassphrases {
	return &StaticPassphrases{values: values}
}

func (s *StaticPassphrases) ReadPassphrase(string) ([]byte, error) {
	if len(s.values) == 0 {
		return []byte{}, nil
	}
	v := s.values[min(s.next, len(s.values)-1)]
	s.next++
	return []byte(v), nil
}
