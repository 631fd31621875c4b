package markup

// BasicColor is an offset into the 8-color SGR palette. Foreground codes
// are 30 (or 90 when bright) plus the offset, background codes 40 plus the
// offset.
type BasicColor uint8

const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	_
	Default
)

// PaletteEntry describes one palette letter.
type PaletteEntry struct {
	Letter rune
	Name   string
	Color  BasicColor
}

// Palette lists the color letters in documentation order.
var Palette = []PaletteEntry{
	{'d', "default", Default},
	{'k', "black", Black},
	{'r', "red", Red},
	{'g', "green", Green},
	{'y', "yellow", Yellow},
	{'b', "blue", Blue},
	{'m', "magenta", Magenta},
	{'c', "cyan", Cyan},
	{'w', "white", White},
}

func lookupColorLetter(r rune) (BasicColor, bool) {
	for _, e := range Palette {
		if e.Letter == r {
			return e.Color, true
		}
	}
	return 0, false
}

// Color is one color channel of a frame. A channel may carry both a
// palette color and a 24-bit color; the latter wins when true color is
// emitted and the former is the fallback otherwise.
type Color struct {
	Basic    BasicColor
	HasBasic bool
	R, G, B  uint8
	HasRGB   bool
}

// IsSet reports whether any color is set on the channel.
func (c Color) IsSet() bool {
	return c.HasBasic || c.HasRGB
}

// apply applies a color spec parsed from a tag. A palette letter replaces
// the whole channel, a 24-bit spec keeps an earlier letter as fallback.
func (c *Color) apply(spec Color) {
	if spec.HasRGB {
		c.R, c.G, c.B, c.HasRGB = spec.R, spec.G, spec.B, true
		return
	}
	*c = Color{Basic: spec.Basic, HasBasic: true}
}

func (c Color) inherit(parent Color) Color {
	if !c.IsSet() {
		return parent
	}
	if !c.HasBasic {
		c.Basic, c.HasBasic = parent.Basic, parent.HasBasic
	}
	return c
}

// Frame is the set of attributes active at one nesting level.
type Frame struct {
	Bold      bool
	Dim       bool
	Underline bool
	Italic    bool
	Reverse   bool
	Bright    bool
	Fg        Color
	Bg        Color
}

// IsZero reports whether the frame sets nothing at all.
func (f Frame) IsZero() bool {
	return f == Frame{}
}

// Inherit returns f merged with the enclosing frame: flags are additive
// and a channel left unset in f takes the parent's color.
func (f Frame) Inherit(parent Frame) Frame {
	f.Bold = f.Bold || parent.Bold
	f.Dim = f.Dim || parent.Dim
	f.Underline = f.Underline || parent.Underline
	f.Italic = f.Italic || parent.Italic
	f.Reverse = f.Reverse || parent.Reverse
	f.Bright = f.Bright || parent.Bright
	f.Fg = f.Fg.inherit(parent.Fg)
	f.Bg = f.Bg.inherit(parent.Bg)
	return f
}
