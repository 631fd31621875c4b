package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// parser holds the state of one conversion. It is never reused.
type parser struct {
	input string
	pos   int
	out   strings.Builder
	stack stack
	opts  Options

	// levels pushed and popped, checked by tests
	pushed int
	popped int
}

func newParser(input string, opts Options) *parser {
	p := &parser{
		input: input,
		stack: newStack(),
		opts:  opts,
	}
	p.out.Grow(len(input))
	return p
}

func (p *parser) fail(code errors.ErrorCode, at int, message string) error {
	return errors.New(code, message).WithDetail("offset", at)
}

func (p *parser) emit(f Frame) {
	if !p.opts.EmitCodes {
		return
	}
	f.writeSGR(&p.out, p.opts.TrueColor)
}

func (p *parser) parse() error {
	for p.pos < len(p.input) {
		var err error

		switch p.input[p.pos] {
		case '\\':
			err = p.parseEscape()
		case '[':
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '/' {
				err = p.parseCloseTag()
			} else {
				err = p.parseOpenTag()
			}
		default:
			p.copyLiteral()
		}

		if err != nil {
			return err
		}
	}

	if p.stack.depth() > 1 {
		return p.fail(errors.ErrUnbalancedOpenTag, len(p.input), "Unbalanced opening tag")
	}
	return nil
}

// copyLiteral copies everything up to the next backslash or bracket. Both
// are ASCII so the scan never splits a UTF-8 sequence.
func (p *parser) copyLiteral() {
	rest := p.input[p.pos:]
	n := strings.IndexAny(rest, `\[`)
	if n < 0 {
		n = len(rest)
	}
	p.out.WriteString(rest[:n])
	p.pos += n
}

func (p *parser) parseEscape() error {
	start := p.pos
	p.pos++

	if p.pos >= len(p.input) {
		return p.fail(errors.ErrIncompleteEscape, start, "Incomplete escape sequence at end of string")
	}

	c := p.input[p.pos]
	if c != '\\' && c != '[' {
		return p.fail(errors.ErrInvalidEscape, start, "Invalid escape sequence")
	}

	p.out.WriteByte(c)
	p.pos++
	return nil
}

func (p *parser) parseCloseTag() error {
	start := p.pos

	// skip `[`, then count slashes
	p.pos++
	levels := 0
	for p.pos < len(p.input) && p.input[p.pos] == '/' {
		levels++
		p.pos++
	}

	if p.pos >= len(p.input) || p.input[p.pos] != ']' {
		return p.fail(errors.ErrUnterminatedCloseTag, p.pos, "Expecting `]` after `[/`")
	}
	p.pos++

	if levels >= p.stack.depth() {
		return p.fail(errors.ErrUnbalancedCloseTag, start, "Unbalanced closing tag")
	}

	p.stack.pop(levels)
	p.popped += levels
	p.emit(p.stack.top())
	return nil
}

func (p *parser) parseOpenTag() error {
	start := p.pos
	p.pos++

	var frame Frame

body:
	for {
		if p.pos >= len(p.input) {
			return p.fail(errors.ErrUnterminatedOpenTag, start, "Expecting `]` to terminate the opening tag")
		}

		switch p.input[p.pos] {
		case ']':
			p.pos++
			break body
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '!':
			frame.Bold = true
			p.pos++
		case '-':
			frame.Dim = true
			p.pos++
		case '_':
			frame.Underline = true
			p.pos++
		case '\'':
			frame.Italic = true
			p.pos++
		case '^':
			frame.Reverse = true
			p.pos++
		case '*':
			frame.Bright = true
			p.pos++
		case ':':
			p.pos++
			spec, err := p.parseColor()
			if err != nil {
				return err
			}
			frame.Bg.apply(spec)
		default:
			spec, err := p.parseColor()
			if err != nil {
				return err
			}
			frame.Fg.apply(spec)
		}
	}

	if frame.IsZero() {
		return p.fail(errors.ErrEmptyOpenTag, start, "Empty opening tag")
	}

	frame = frame.Inherit(p.stack.top())
	if !p.stack.push(frame) {
		return p.fail(errors.ErrNestingTooDeep, start, "Maximum nesting depth exceeded")
	}
	p.pushed++

	p.emit(frame)
	return nil
}

// parseColor parses a palette letter or a `#RRGGBB` spec at the cursor.
func (p *parser) parseColor() (Color, error) {
	if p.pos >= len(p.input) {
		return Color{}, p.fail(errors.ErrExpectingColor, p.pos, "Expecting color letter")
	}

	if p.input[p.pos] == '#' {
		return p.parseHexColor()
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	basic, ok := lookupColorLetter(r)
	if !ok {
		return Color{}, errors.Newf(errors.ErrUnknownColor, "Unknown color letter `%c`", r).
			WithDetail("offset", p.pos)
	}

	p.pos += size
	return Color{Basic: basic, HasBasic: true}, nil
}

func (p *parser) parseHexColor() (Color, error) {
	start := p.pos
	digits := p.input[p.pos+1 : min(p.pos+7, len(p.input))]

	if len(digits) < 6 || strings.IndexFunc(digits, notHexDigit) >= 0 {
		return Color{}, p.fail(errors.ErrInvalidHexColor, start, "Expecting six hexadecimal digits after `#`")
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, errors.Wrap(err, errors.ErrInvalidHexColor, "Expecting six hexadecimal digits after `#`").
			WithDetail("offset", start)
	}

	p.pos += 7
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, HasRGB: true}, nil
}

func notHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return false
	}
	return true
}
