package markup

// Options controls what Convert writes for each tag.
type Options struct {
	// EmitCodes writes SGR sequences. When false tags are validated and
	// removed.
	EmitCodes bool

	// TrueColor writes 24-bit color sequences for `#RRGGBB` specs.
	TrueColor bool
}

// Convert parses input and returns it with tags replaced by SGR sequences
// (or removed) and escapes resolved. It returns the first syntax error
// found, as an *errors.MintError carrying the byte offset in its
// "offset" detail; no partial output is returned.
//
// Convert keeps no state between calls and is safe for concurrent use.
func Convert(input string, opts Options) (string, error) {
	p := newParser(input, opts)
	if err := p.parse(); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

// Validate reports the first syntax error in input, if any.
func Validate(input string) error {
	_, err := Convert(input, Options{})
	return err
}
