package terminal_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/mint/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportString(t *testing.T) {
	tests := []struct {
		support  terminal.Support
		expected string
	}{
		{terminal.None, "none"},
		{terminal.BasicColor, "basic-color"},
		{terminal.TrueColor, "true-color"},
		{terminal.Support(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.support.String())
		})
	}
}

func TestProbe(t *testing.T) {
	tty := func(term, colorTerm string) terminal.Env {
		return terminal.Env{IsTerminal: true, IsCharDevice: true, Term: term, ColorTerm: colorTerm}
	}

	tests := []struct {
		name     string
		env      terminal.Env
		expected terminal.Support
	}{
		{"not a terminal", terminal.Env{Term: "xterm-256color"}, terminal.None},
		{"not a char device", terminal.Env{IsTerminal: true, Term: "xterm"}, terminal.None},
		{"no TERM", tty("", ""), terminal.None},
		{"dumb TERM", tty("dumb", "truecolor"), terminal.None},
		{"plain xterm", tty("xterm", ""), terminal.BasicColor},
		{"256 colors is not true color", tty("xterm-256color", ""), terminal.BasicColor},
		{"COLORTERM truecolor", tty("xterm-256color", "truecolor"), terminal.TrueColor},
		{"COLORTERM 24bit", tty("screen", "24bit"), terminal.TrueColor},
		{"COLORTERM case", tty("xterm", "TrueColor"), terminal.TrueColor},
		{"COLORTERM unknown", tty("xterm", "yes"), terminal.BasicColor},
		{"TERM direct suffix", tty("xterm-direct", ""), terminal.TrueColor},
		{"TERM truecolor suffix", tty("tmux-truecolor", ""), terminal.TrueColor},
		{"TERM 24bit suffix", tty("konsole-24bit", ""), terminal.TrueColor},
		{"kitty", tty("xterm-kitty", ""), terminal.TrueColor},
		{"alacritty", tty("alacritty", ""), terminal.TrueColor},
		{"wezterm", tty("wezterm", ""), terminal.TrueColor},
		{"ghostty", tty("xterm-ghostty", ""), terminal.TrueColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, terminal.Probe(tt.env))
		})
	}
}

func TestSnapshot_RegularFile(t *testing.T) {
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("COLORTERM", "truecolor")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	env := terminal.Snapshot(f)
	assert.False(t, env.IsTerminal)
	assert.False(t, env.IsCharDevice)
	assert.Equal(t, "xterm-kitty", env.Term)
	assert.Equal(t, "truecolor", env.ColorTerm)
	assert.Equal(t, terminal.None, terminal.Probe(env))
}

func TestDetect_Cached(t *testing.T) {
	first := terminal.Detect()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, terminal.Detect())
		}()
	}
	wg.Wait()

	// Environment changes after the first call are not observed
	t.Setenv("TERM", "dumb")
	assert.Equal(t, first, terminal.Detect())
}
