package markup

import (
	"strconv"
	"strings"
)

const (
	sgrStart = "\x1b[0"
	sgrEnd   = 'm'

	fgBase       = 30
	fgBrightBase = 90
	bgBase       = 40
)

// SGR returns the escape sequence selecting exactly the attributes of f.
// The sequence always starts with a reset. With trueColor false a 24-bit
// channel falls back to its palette color, or is left out if it has none.
func (f Frame) SGR(trueColor bool) string {
	var b strings.Builder
	f.writeSGR(&b, trueColor)
	return b.String()
}

func (f Frame) writeSGR(b *strings.Builder, trueColor bool) {
	b.WriteString(sgrStart)

	if f.Bold {
		b.WriteString(";1")
	}
	if f.Dim {
		b.WriteString(";2")
	}
	if f.Italic {
		b.WriteString(";3")
	}
	if f.Underline {
		b.WriteString(";4")
	}
	if f.Reverse {
		b.WriteString(";7")
	}

	base := fgBase
	if f.Bright {
		base = fgBrightBase
	}
	writeColor(b, f.Fg, "38", base, trueColor)
	writeColor(b, f.Bg, "48", bgBase, trueColor)

	b.WriteByte(sgrEnd)
}

func writeColor(b *strings.Builder, c Color, extended string, base int, trueColor bool) {
	switch {
	case trueColor && c.HasRGB:
		b.WriteByte(';')
		b.WriteString(extended)
		b.WriteString(";2;")
		b.WriteString(strconv.Itoa(int(c.R)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(c.G)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(c.B)))
	case c.HasBasic:
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(base + int(c.Basic)))
	}
}
