package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// isolateUserConfigDir points os.UserConfigDir at a temp dir.
func isolateUserConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstConfigWins verifies that a non-zero field of an earlier
// config is not overwritten by a later one.
func TestBuild_FirstConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: BackendMemory}},
		&StructuredConfig{
			Storage: Storage{Backend: BackendBolt, Bolt: Bolt{Path: "/tmp/x.bolt"}},
			App:     App{LogFile: "/tmp/log"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/x.bolt", cfg.Storage.Bolt.Path)
	assert.Equal(t, "/tmp/log", cfg.App.LogFile)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: "postgres"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_FILES_SALT_FILE", "/tmp/salt.json")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, BackendFile, b.configs[0].Storage.Backend)
	assert.Equal(t, "/tmp/salt.json", b.configs[0].Storage.Files.SaltFile)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_REQUIRE_ENCRYPTION", "sometimes")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	flagCfg := &StructuredConfig{Storage: Storage{Backend: BackendMemory}}

	b := newConfigBuilder().withFlags(flagCfg)

	require.Len(t, b.configs, 1)
	assert.Same(t, flagCfg, b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.Backend = "bolt"
	payload.Storage.Bolt.Path = "/data/vault.bolt"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, BackendBolt, b.configs[1].Storage.Backend)
	assert.Equal(t, "/data/vault.bolt", b.configs[1].Storage.Bolt.Path)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority source
// naming a JSON file decides which file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.LogFile = "first"
	second := StructuredJSONConfig{}
	second.App.LogFile = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.LogFile)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsPathsUnderUserConfigDir(t *testing.T) {
	dir := isolateUserConfigDir(t)

	b := newConfigBuilder().withDefaults()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	d := b.configs[0]
	assert.Equal(t, BackendSQLite, d.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "piivault", "piivault.db"), d.Storage.DB.DSN)
	assert.Equal(t, filepath.Join(dir, "piivault", "salt.json"), d.Storage.Files.SaltFile)
	assert.Equal(t, "piivault", d.Storage.Keyring.Service)
	assert.Equal(t, "description|notes|payee", d.Records.PIIFields["transactions"])
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	isolateUserConfigDir(t)

	payload := StructuredJSONConfig{}
	payload.Storage.Backend = "bolt"
	payload.Storage.Bolt.Path = "/json/vault.bolt"
	payload.App.LogFile = "/json/log"
	jsonPath := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", jsonPath)
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("APP_LOG_FILE", "/env/log")

	flagCfg := &StructuredConfig{App: App{LogFile: "/flag/log"}}

	cfg, err := GetStructuredConfig(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, "/flag/log", cfg.App.LogFile)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/json/vault.bolt", cfg.Storage.Bolt.Path)
	assert.NotEmpty(t, cfg.Storage.Files.SaltFile)
	assert.NotEmpty(t, cfg.Records.FieldSets())
}

func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	isolateUserConfigDir(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.False(t, cfg.App.RequireEncryption)
	assert.Equal(t, []string{"name", "notes"}, []string(cfg.Records.FieldSets()["accounts"]))
}
