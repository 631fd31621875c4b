package cli

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/logging"
	"github.com/arthur-debert/mint/pkg/markup"
	"github.com/arthur-debert/mint/pkg/mint"
	"github.com/arthur-debert/mint/pkg/textutil"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultWidth is used for --wrap -1 when the width can't be read.
const defaultWidth = 80

// terminalWidth is swapped in tests
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// readInput joins the arguments with spaces, or reads all of stdin when
// there are none. fromArgs tells the caller to end the output with a
// newline, as echo does.
func readInput(cmd *cobra.Command, args []string) (text string, fromArgs bool, err error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to read standard input")
	}
	return string(data), false, nil
}

// writeOutput writes s, adding a newline when the input came from
// arguments and newline is set.
func writeOutput(cmd *cobra.Command, s string, fromArgs, newline bool) error {
	if fromArgs && newline {
		s += "\n"
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), s); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write output")
	}
	return nil
}

func newRenderCmd(st *state) *cobra.Command {
	var (
		check     bool
		noNewline bool
	)

	cmd := &cobra.Command{
		Use:     "render [text...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")

			text, fromArgs, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if check {
				logger.Debug().Int("bytes", len(text)).Msg("checking markup")
				return markup.Validate(text)
			}

			done := logging.LogOperationStart(logger, "render")
			defer done()

			r := st.renderer(cmd.OutOrStdout())
			logger.Debug().
				Bool("emit_codes", r.Options().EmitCodes).
				Bool("true_color", r.Options().TrueColor).
				Int("bytes", len(text)).
				Msg("rendering")

			out, err := r.Render(text)
			if err != nil {
				return err
			}

			out = wrapText(out, st.cfg.Wrap)
			return writeOutput(cmd, out, fromArgs, !noNewline)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.Flags().IntP("wrap", "w", 0, MsgFlagWrap)

	return cmd
}

// wrapText wraps at width cells; -1 means the terminal width.
func wrapText(s string, width int) string {
	if width < 0 {
		width = terminalWidth()
	}
	return textutil.Wrap(s, width)
}

func newEscapeCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:     "escape [text...]",
		Short:   MsgEscapeShort,
		Long:    MsgEscapeLong,
		Example: "  mint render \"[!]Hello[/] $(mint escape \"$USER\")\"",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, fromArgs, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeOutput(cmd, mint.Escape(text), fromArgs, !noNewline)
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	return cmd
}

func newStripCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:     "strip [text...]",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		Example: "  some-colored-tool | mint strip > plain.log",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, fromArgs, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeOutput(cmd, mint.StripANSI(text), fromArgs, !noNewline)
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	return cmd
}
