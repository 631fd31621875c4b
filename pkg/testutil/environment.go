// pkg/testutil/environment.go
// DEPENDENCIES: adrg/xdg
// PURPOSE: Isolate tests from the user's config, state and environment

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// EnvPrefix is the prefix of the variables cleared by NewTestEnvironment
const EnvPrefix = "MINT_"

// TestEnvironment is an isolated set of XDG directories
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment points XDG_CONFIG_HOME, XDG_CONFIG_DIRS and
// XDG_STATE_HOME at a fresh temp dir and clears MINT_* and NO_COLOR.
// Everything is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	env.Unsetenv("NO_COLOR")
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, EnvPrefix) {
			env.Unsetenv(name)
		}
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// Unsetenv removes name for the rest of the test
func (env *TestEnvironment) Unsetenv(name string) {
	env.t.Helper()
	// Setenv registers the restore
	env.t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		env.t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// ConfigPath is the path of a file in the mint config directory
func (env *TestEnvironment) ConfigPath(name string) string {
	return filepath.Join(env.ConfigHome, "mint", name)
}

// WriteConfig writes a file into the mint config directory and returns
// its path
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, filepath.Join(env.ConfigHome, "mint"), name, content)
}
