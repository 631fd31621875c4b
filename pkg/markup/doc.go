/*
Package markup converts inline terminal attribute tags into SGR escape
sequences.

The engine scans its input once, left to right. Opening tags push an
attribute frame onto a small fixed stack, closing tags pop it, and every
transition writes the full SGR sequence of the frame that is now active.
Each sequence starts with a reset, so the output never depends on what the
terminal had active before.

# Usage

	out, err := markup.Convert("[!r]error:[/] disk full", markup.Options{
		EmitCodes: true,
		TrueColor: false,
	})

With EmitCodes false the tags are parsed and validated but removed from the
output, which is how plain text is produced for pipes and dumb terminals.

# Opening tags

An opening tag is, between `[` and `]`, an unordered sequence of specifiers
(at least one). Whitespace between specifiers is ignored.

	!        bold
	-        dim
	_        underline
	'        italic
	^        reverse video
	*        bright foreground
	COLOR    foreground color
	:COLOR   background color

COLOR is either one of the palette letters or `#` followed by six
hexadecimal digits:

	d  default    k  black    r  red
	g  green      y  yellow   b  blue
	m  magenta    c  cyan     w  white

When a tag names two colors for the same channel the later one wins. A
true-color spec that follows a palette letter keeps the letter as the
fallback used when true color is not emitted, so `[r#ff5f00]` renders
orange on capable terminals and red elsewhere.

# Closing tags

`[/]` closes the innermost tag. Each extra slash closes one more level, so
`[///]` closes three.

# Escaping

`\[` produces a literal `[` and `\\` a literal `\`. Any other character
after a backslash is an error.

# Nesting

Tags nest up to four levels deep and must be balanced. Nesting is additive:
an inner tag inherits every attribute of the outer one and can only add to
it. A nested color replaces the inherited color of the same channel.
*/
package markup
