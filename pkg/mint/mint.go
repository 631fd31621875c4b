// Package mint renders inline attribute markup for the terminal it is
// printing to.
//
// It wires the markup engine to terminal detection: with When set to Auto
// SGR codes are only emitted when standard output is a terminal that seems
// to support them and NO_COLOR is not set, otherwise tags are stripped.
//
//	fmt.Println(mint.MustRender("[!g]OK[/] all checks passed", mint.Auto))
//
// See package markup for the tag syntax.
package mint

import (
	"strings"

	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/markup"
	"github.com/arthur-debert/mint/pkg/terminal"
	"github.com/arthur-debert/mint/pkg/textutil"
	"github.com/muesli/termenv"
)

// When controls when SGR codes are emitted.
type When int

const (
	// Auto emits codes when the terminal seems to support them.
	Auto When = iota
	// Always emits codes, even when the terminal doesn't seem to support them.
	Always
	// Never strips tags, even when the terminal seems to support them.
	Never
)

// String returns the string representation of the mode
func (w When) String() string {
	switch w {
	case Auto:
		return "auto"
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// ParseWhen parses "auto", "always" or "never". The empty string is auto.
func ParseWhen(s string) (When, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, errors.Newf(errors.ErrInvalidInput, "unknown color mode: %s", s).
			WithDetail("value", s)
	}
}

// Options selects when codes and 24-bit colors are emitted.
type Options struct {
	Color     When
	TrueColor When
}

// detect is swapped in tests.
var detect = terminal.Detect

// resolve turns the modes into engine options for a terminal with the
// given support level.
func (o Options) resolve(support terminal.Support) markup.Options {
	var emit bool
	switch o.Color {
	case Always:
		emit = true
	case Never:
		emit = false
	default:
		emit = support != terminal.None && !termenv.EnvNoColor()
	}

	if !emit {
		return markup.Options{}
	}

	var trueColor bool
	switch o.TrueColor {
	case Always:
		trueColor = true
	case Never:
		trueColor = false
	default:
		trueColor = support == terminal.TrueColor
	}

	return markup.Options{EmitCodes: true, TrueColor: trueColor}
}

// Render converts s for standard output. It returns the first markup
// syntax error found in s.
func Render(s string, when When) (string, error) {
	return markup.Convert(s, Options{Color: when}.resolve(detect()))
}

// MustRender is like Render but panics on a syntax error. Use it for
// string literals.
func MustRender(s string, when When) string {
	out, err := Render(s, when)
	if err != nil {
		panic(err)
	}
	return out
}

// Escape returns s with markup characters escaped.
func Escape(s string) string {
	return textutil.Escape(s)
}

// StripANSI removes SGR sequences from s.
func StripANSI(s string) string {
	return textutil.StripANSI(s)
}
