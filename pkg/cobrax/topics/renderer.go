package topics

import (
	"github.com/arthur-debert/mint/pkg/mint"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkupRenderer converts ".txt" topics written in mint markup and hands
// every other format to Next.
type MarkupRenderer struct {
	Markup *mint.Renderer
	Next   Renderer
}

// Render converts markup topics. A topic with a syntax error is shown
// with its tags stripped, or raw if even that fails.
func (r *MarkupRenderer) Render(content string, format string) string {
	if format != ".txt" {
		if r.Next == nil {
			return content
		}
		return r.Next.Render(content, format)
	}

	if out, err := r.Markup.Render(content); err == nil {
		return out
	}
	if out, err := mint.Render(content, mint.Never); err == nil {
		return out
	}
	return content
}
