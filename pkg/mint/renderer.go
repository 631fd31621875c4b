package mint

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/mint/pkg/markup"
	"github.com/arthur-debert/mint/pkg/terminal"
)

// Renderer converts markup for one output writer.
type Renderer struct {
	w    io.Writer
	opts markup.Options
}

// NewRenderer creates a Renderer writing to w. Terminal support is probed
// on w when it is a file; any other writer is treated as a pipe.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts.resolve(SupportFor(w))}
}

// SupportFor reports the terminal support of w. Standard output uses the
// cached detection, other files are probed, anything else is a pipe.
func SupportFor(w io.Writer) terminal.Support {
	f, ok := w.(*os.File)
	if !ok {
		return terminal.None
	}
	if f == os.Stdout {
		return detect()
	}
	return terminal.Probe(terminal.Snapshot(f))
}

// Options returns the engine options the renderer resolved to.
func (r *Renderer) Options() markup.Options {
	return r.opts
}

// Render converts s without writing it.
func (r *Renderer) Render(s string) (string, error) {
	return markup.Convert(s, r.opts)
}

// Print converts s and writes it.
func (r *Renderer) Print(s string) error {
	out, err := r.Render(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// Println converts s and writes it followed by a newline.
func (r *Renderer) Println(s string) error {
	return r.Print(s + "\n")
}

// Sprintf formats according to format and converts the result. The
// arguments are escaped first so their text never reads as markup.
func (r *Renderer) Sprintf(format string, args ...interface{}) (string, error) {
	format, args = escapeFormat(format, args)
	return r.Render(fmt.Sprintf(format, args...))
}

// Printf is Sprintf followed by a write.
func (r *Renderer) Printf(format string, args ...interface{}) error {
	out, err := r.Sprintf(format, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, out)
	return err
}
