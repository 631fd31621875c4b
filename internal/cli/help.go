package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/mint/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

func topicsFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}

// topicRenderer picks the topic renderers once the render modes are known:
// markup topics go through the engine, markdown through glamour, styled
// only when the command output takes escape codes.
type topicRenderer struct {
	st  *state
	cmd *cobra.Command
}

func (t *topicRenderer) Render(content string, format string) string {
	r := t.st.renderer(t.cmd.OutOrStdout())

	var next topics.Renderer = topics.NewPlainGlamourRenderer()
	if r.Options().EmitCodes {
		next = topics.NewGlamourRenderer()
	}

	return (&topics.MarkupRenderer{Markup: r, Next: next}).Render(content, format)
}
