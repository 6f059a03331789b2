package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPassphrases_ReplaysThenRepeatsLast(t *testing.T) {
	src := NewStaticPassphrases("one", "two")

	for _, want := range []string{"one", "two", "two"} {
		got, err := src.ReadPassphrase("")
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestStaticPassphrases_Empty(t *testing.T) {
	got, err := NewStaticPassphrases().ReadPassphrase("")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDefaultPassphraseSource_PrefersEnv(t *testing.T) {
	t.Setenv(PassphraseEnv, "from-env")

	got, err := NewDefaultPassphraseSource().ReadPassphrase("Passphrase: ")

	require.NoError(t, err)
	assert.Equal(t, "from-env", string(got))
}
