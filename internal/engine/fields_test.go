package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pii-vault/internal/logger"
	"github.com/MKhiriev/go-pii-vault/internal/store"
	"github.com/MKhiriev/go-pii-vault/models"
)

func TestEncryptFields_Selectivity(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)
	in := models.Record{"name": "Alice", "balance": 100}

	out, err := e.EncryptFields(in, []string{"name"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out["name"].(string), "ENC:v1:"))
	assert.Equal(t, 100, out["balance"])

	// input untouched
	assert.Equal(t, models.Record{"name": "Alice", "balance": 100}, in)

	back := e.DecryptFields(out, []string{"name"})
	assert.Equal(t, in, back)
}

func TestEncryptFields_SkipsValuesThatAreNotEncryptable(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)
	in := models.Record{
		"empty":  "",
		"number": 42.5,
		"nested": map[string]any{"notes": "inner"},
		"flag":   true,
		"nil":    nil,
	}

	out, err := e.EncryptFields(in, []string{"empty", "number", "nested", "flag", "nil", "missing"})
	require.NoError(t, err)

	assert.Equal(t, in, out)
	_, added := out["missing"]
	assert.False(t, added)
}

// TestEncryptFields_DoesNotReencryptOwnValues verifies that a value sealed
// with the current key is left as it is, so protecting twice is idempotent.
func TestEncryptFields_DoesNotReencryptOwnValues(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)

	once, err := e.EncryptFields(models.Record{"notes": "rent"}, []string{"notes"})
	require.NoError(t, err)
	twice, err := e.EncryptFields(once, []string{"notes"})
	require.NoError(t, err)

	assert.Equal(t, once["notes"], twice["notes"])
	assert.Equal(t, "rent", e.DecryptFields(twice, []string{"notes"})["notes"])
}

// TestEncryptFields_EncryptsTextThatLooksEncrypted verifies that user text
// carrying the encryption prefix is still encrypted and reads back intact.
func TestEncryptFields_EncryptsTextThatLooksEncrypted(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)

	for _, text := range []string{"ENC:v1:call Bob re: 555-0100", "ENC:v1:", "ENC:v1:AAAA"} {
		out, err := e.EncryptFields(models.Record{"notes": text}, []string{"notes"})
		require.NoError(t, err)

		stored := out["notes"].(string)
		assert.NotEqual(t, text, stored, "text %q left unencrypted", text)
		assert.True(t, strings.HasPrefix(stored, "ENC:v1:"))
		assert.Equal(t, text, e.DecryptFields(out, []string{"notes"})["notes"])
	}
}

// TestEncryptFields_EncryptsValuesOfAnotherKey verifies that only values
// opening under the current key count as already encrypted.
func TestEncryptFields_EncryptsValuesOfAnotherKey(t *testing.T) {
	s := store.NewMemorySaltStore()
	foreign, err := newUnlockedEngine(t, s, "another-horse").Encrypt("rent")
	require.NoError(t, err)

	e := newUnlockedEngine(t, s, passphrase)
	out, err := e.EncryptFields(models.Record{"notes": foreign}, []string{"notes"})
	require.NoError(t, err)

	assert.NotEqual(t, foreign, out["notes"])
	assert.Equal(t, foreign, e.DecryptFields(out, []string{"notes"})["notes"])
}

func TestEncryptFields_NilRecord(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)

	out, err := e.EncryptFields(nil, []string{"name"})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Nil(t, e.DecryptFields(nil, []string{"name"}))
}

func TestFieldOperations_LockedAreNoOps(t *testing.T) {
	e := New(store.NewMemorySaltStore(), logger.Nop())

	plain := models.Record{"name": "Alice", "balance": 100}
	marked := models.Record{"name": "ENC:v1:AAAA", "balance": 100}

	out, err := e.EncryptFields(plain, []string{"name"})
	require.NoError(t, err)
	assert.Equal(t, plain, out)

	assert.Equal(t, marked, e.DecryptFields(marked, []string{"name"}))

	batch := []models.Record{plain, marked}
	assert.Equal(t, batch, e.DecryptBatch(batch, []string{"name"}))
}

func TestDecryptFields_FailureOnlyAffectsItsField(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)

	enc, err := e.EncryptFields(models.Record{"name": "Alice", "notes": "vip"}, []string{"name", "notes"})
	require.NoError(t, err)
	enc["notes"] = "ENC:v1:broken!"

	out := e.DecryptFields(enc, []string{"name", "notes"})

	assert.Equal(t, "Alice", out["name"])
	assert.Equal(t, Sentinel, out["notes"])
	assert.Equal(t, "ENC:v1:broken!", enc["notes"])
}

func TestDecryptFieldsChecked(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)

	enc, err := e.EncryptFields(models.Record{"name": "Alice", "notes": "vip"}, []string{"name", "notes"})
	require.NoError(t, err)

	out, err := e.DecryptFieldsChecked(enc, []string{"name", "notes"})
	require.NoError(t, err)
	assert.Equal(t, models.Record{"name": "Alice", "notes": "vip"}, out)

	enc["notes"] = "ENC:v1:broken!"
	out, err = e.DecryptFieldsChecked(enc, []string{"name", "notes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailure)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "notes", fieldErr.Field)
	assert.NotContains(t, err.Error(), "vip")

	assert.Equal(t, "Alice", out["name"])
	assert.Equal(t, Sentinel, out["notes"])
}

func TestDecryptFieldsChecked_Locked(t *testing.T) {
	e := New(store.NewMemorySaltStore(), logger.Nop())

	plain := models.Record{"name": "Alice"}
	out, err := e.DecryptFieldsChecked(plain, []string{"name"})
	require.NoError(t, err)
	assert.Equal(t, plain, out)

	marked := models.Record{"name": "ENC:v1:AAAA"}
	out, err = e.DecryptFieldsChecked(marked, []string{"name"})
	assert.ErrorIs(t, err, ErrNotUnlocked)
	assert.Equal(t, marked, out)
}

func TestDecryptBatch_MixedNotes(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)
	fields := []string{"notes"}

	r0, err := e.EncryptFields(models.Record{"id": 0, "notes": "first"}, fields)
	require.NoError(t, err)
	r2, err := e.EncryptFields(models.Record{"id": 2, "notes": "third"}, fields)
	require.NoError(t, err)
	records := []models.Record{r0, {"id": 1, "notes": "hello"}, r2}

	out := e.DecryptBatch(records, fields)

	require.Len(t, out, 3)
	assert.Equal(t, models.Record{"id": 0, "notes": "first"}, out[0])
	assert.Equal(t, models.Record{"id": 1, "notes": "hello"}, out[1])
	assert.Equal(t, models.Record{"id": 2, "notes": "third"}, out[2])

	// the input batch still holds ciphertext
	assert.True(t, strings.HasPrefix(records[0]["notes"].(string), "ENC:v1:"))
}

func TestDecryptBatch_OneBadRecordDoesNotStopOthers(t *testing.T) {
	e := newUnlockedEngine(t, store.NewMemorySaltStore(), passphrase)
	fields := []string{"notes"}

	good, err := e.EncryptFields(models.Record{"notes": "ok"}, fields)
	require.NoError(t, err)
	records := []models.Record{{"notes": "ENC:v1:AAAA"}, good, nil}

	out := e.DecryptBatch(records, fields)

	require.Len(t, out, 3)
	assert.Equal(t, Sentinel, out[0]["notes"])
	assert.Equal(t, "ok", out[1]["notes"])
	assert.Nil(t, out[2])
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "plain", StatusPlain.String())
	assert.Equal(t, "decrypted", StatusDecrypted.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(9).String())
}
