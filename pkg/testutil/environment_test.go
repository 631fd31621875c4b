package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	t.Setenv("MINT_COLOR", "always")
	t.Setenv("NO_COLOR", "1")

	env := NewTestEnvironment(t)

	assert.Equal(t, env.ConfigHome, xdg.ConfigHome)
	assert.Equal(t, env.StateHome, xdg.StateHome)

	_, set := os.LookupEnv("MINT_COLOR")
	assert.False(t, set)
	_, set = os.LookupEnv("NO_COLOR")
	assert.False(t, set)
}

func TestWriteConfig(t *testing.T) {
	env := NewTestEnvironment(t)

	path := env.WriteConfig("config.toml", "wrap = 1\n")
	assert.Equal(t, env.ConfigPath("config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "wrap = 1\n", string(data))

	found, err := xdg.SearchConfigFile(filepath.Join("mint", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestCreateDir(t *testing.T) {
	dir := CreateDir(t, t.TempDir(), "a/b")
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
