// Package textutil holds the string transforms that sit around the markup
// engine: escaping text so it is never read as markup, and measuring or
// stripping text that already carries SGR sequences.
package textutil

import (
	"regexp"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// sgrPattern matches a complete SGR sequence: ESC [ parameters m.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var escaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`)

// Escape returns s with `\` replaced by `\\` and `[` by `\[`, so that
// converting the result yields s again.
func Escape(s string) string {
	return escaper.Replace(s)
}

// StripANSI removes every well-formed SGR sequence from s. A malformed
// sequence is left alone, ESC included.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return sgrPattern.ReplaceAllString(s, "")
}

// Width returns the number of terminal cells s occupies, ignoring escape
// sequences.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// Wrap word-wraps s at width cells without counting or breaking escape
// sequences. A width of zero or less returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
