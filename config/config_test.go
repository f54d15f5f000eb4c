package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zki.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field_order: secp256k1\nworkspace: ./out\ncolor: true\ncache_size: 512\nfieldVendor: extra\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "secp256k1", f.FieldOrder)
	require.Equal(t, "./out", f.Workspace)
	require.True(t, f.Color)
	require.Equal(t, 512, f.CacheSize)
	require.Equal(t, "extra", f.Extra["field_vendor"])
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zki.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"field_order":"ed25519","cache_size":64}`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "ed25519", f.FieldOrder)
	require.Equal(t, 64, f.CacheSize)
}

func TestLoad_UnrecognizedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zki.toml")
	require.NoError(t, os.WriteFile(path, []byte("field_order = \"secp256k1\""), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
