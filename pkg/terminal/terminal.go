// Package terminal reports what kind of attribute support the terminal
// attached to standard output seems to have.
package terminal

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Support is the attribute support level of a terminal.
type Support int

const (
	// None means SGR codes should not be emitted.
	None Support = iota
	// BasicColor means the 16-color palette and text attributes work.
	BasicColor
	// TrueColor means 24-bit colors work as well.
	TrueColor
)

// String returns the string representation of the support level
func (s Support) String() string {
	switch s {
	case None:
		return "none"
	case BasicColor:
		return "basic-color"
	case TrueColor:
		return "true-color"
	default:
		return "unknown"
	}
}

// Env is the part of the process environment the probe looks at.
type Env struct {
	IsTerminal   bool
	IsCharDevice bool
	Term         string
	ColorTerm    string
}

var trueColorColorTerms = []string{"truecolor", "24bit"}

var trueColorTermSuffixes = []string{"-direct", "-truecolor", "-24bit"}

// Terminals known to handle 24-bit color without advertising it.
var trueColorTerms = []string{
	"alacritty",
	"contour",
	"foot",
	"iterm2",
	"wezterm",
	"xterm-ghostty",
	"xterm-kitty",
}

// Probe computes the support level for env.
func Probe(env Env) Support {
	if !env.IsTerminal || !env.IsCharDevice {
		return None
	}

	if env.Term == "" || env.Term == "dumb" {
		return None
	}

	colorTerm := strings.ToLower(env.ColorTerm)
	for _, v := range trueColorColorTerms {
		if colorTerm == v {
			return TrueColor
		}
	}

	for _, suffix := range trueColorTermSuffixes {
		if strings.HasSuffix(env.Term, suffix) {
			return TrueColor
		}
	}

	for _, name := range trueColorTerms {
		if env.Term == name {
			return TrueColor
		}
	}

	return BasicColor
}

// Snapshot reads the probe inputs for f from the process environment.
func Snapshot(f *os.File) Env {
	env := Env{
		IsTerminal: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		Term:       os.Getenv("TERM"),
		ColorTerm:  os.Getenv("COLORTERM"),
	}

	// A failed stat does not rule the device out
	env.IsCharDevice = true
	if info, err := f.Stat(); err == nil {
		env.IsCharDevice = info.Mode()&os.ModeCharDevice != 0
	}

	return env
}

var (
	detectOnce sync.Once
	detected   Support
)

// Detect returns the support level of standard output. The probe runs
// once per process; later calls return the cached result.
func Detect() Support {
	detectOnce.Do(func() {
		detected = Probe(Snapshot(os.Stdout))
	})
	return detected
}
