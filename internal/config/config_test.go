package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = append([]string{"app"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ".localnotes", cfg.DataDir)
	assert.Equal(t, "notes.db", cfg.DatabaseFile)
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, 5*time.Second, cfg.OpTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	setArgs(t, "-d", "/tmp/notes-data", "-o", "10")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/notes-data", cfg.DataDir)
	assert.Equal(t, 10*time.Second, cfg.OpTimeout)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "notes.db"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join("/data", "images"), cfg.ImagesPath())
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"data_dir": "/from-json",
		"op_timeout": "7s"
	}`), 0o660))

	setArgs(t, "-c", file)

	cfg := LoadConfig()

	assert.Equal(t, "/from-json", cfg.DataDir)
	assert.Equal(t, 7*time.Second, cfg.OpTimeout)
	assert.Equal(t, "notes.db", cfg.DatabaseFile, "fields absent from JSON keep defaults")
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"data_dir": "/from-json"}`), 0o660))

	setArgs(t, "-c", file, "-d", "/from-flag")

	cfg := LoadConfig()

	assert.Equal(t, "/from-flag", cfg.DataDir)
}
