package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/mint/pkg/markup"
	"github.com/arthur-debert/mint/pkg/mint"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// paletteRows renders one sample per palette color and attribute.
func paletteRows(r *mint.Renderer) ([][]string, error) {
	rows := make([][]string, 0, len(markup.Palette))
	for _, e := range markup.Palette {
		letter := string(e.Letter)
		samples := []string{
			"[" + letter + "]sample[/]",
			"[*" + letter + "]sample[/]",
			"[:" + letter + "] sample [/]",
		}

		row := []string{letter, e.Name}
		for _, s := range samples {
			out, err := r.Render(s)
			if err != nil {
				return nil, err
			}
			row = append(row, out)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func paletteTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TAG", "NAME", "FOREGROUND", "BRIGHT", "BACKGROUND").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func newColorsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "colors",
		Short:   MsgColorsShort,
		Long:    "Colors prints a table of the palette letters with foreground, bright and background samples.",
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := st.renderer(cmd.OutOrStdout())

			rows, err := paletteRows(r)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(paletteTable(rows))
			b.WriteString("\n\n")

			attrs, err := r.Render("[!]! bold[/]  [-]- dim[/]  [_]_ underline[/]  [']' italic[/]  [^]^ reverse[/]")
			if err != nil {
				return err
			}
			b.WriteString(attrs)
			b.WriteString("\n")

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
