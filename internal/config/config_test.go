package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Separator)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.KeepEmpty)
	assert.Equal(t, "json", cfg.From)
	assert.Equal(t, "json", cfg.To)
	assert.Equal(t, FormatDoc, cfg.Format)
	assert.Empty(t, cfg.Source)
}

func TestLoadXDGFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, AppName, "config.toml")
	writeFile(t, path, "separator = \"/\"\nstrict = true\nto = \"yaml\"\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.Separator)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "yaml", cfg.To)
	assert.Equal(t, "json", cfg.From)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "keep_empty: true\nformat: list\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.KeepEmpty)
	assert.Equal(t, FormatList, cfg.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, AppName, "config.toml"), "separator = \"/\"\n")
	t.Setenv("DOTX_SEPARATOR", "::")
	t.Setenv("DOTX_KEEP_EMPTY", "true")
	t.Setenv("DOTX_VERBOSITY", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "::", cfg.Separator)
	assert.True(t, cfg.KeepEmpty)
	assert.Equal(t, 2, cfg.Verbosity)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	ini := filepath.Join(dir, "config.ini")
	writeFile(t, ini, "a=b")
	_, err = Load(ini)
	assert.ErrorIs(t, err, ErrInvalid)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "format = \"table\"\n")
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cfg := Config{Separator: ".", Format: FormatDoc}
	assert.NoError(t, cfg.Validate())

	cfg.Separator = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Config{Separator: ".", Format: FormatList, Verbosity: -1}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestOptions(t *testing.T) {
	cfg := Config{Separator: "/", Strict: true, KeepEmpty: true, CoerceKeys: true}
	opts := cfg.Options()
	assert.Equal(t, "/", opts.Separator)
	assert.True(t, opts.Strict)
	assert.True(t, opts.KeepEmpty)
	assert.True(t, opts.CoerceKeys)
}
