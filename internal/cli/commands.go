package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/mint/internal/version"
	"github.com/arthur-debert/mint/pkg/config"
	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/logging"
	"github.com/arthur-debert/mint/pkg/mint"
	"github.com/arthur-debert/mint/pkg/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newSupportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "support",
		Short:   MsgSupportShort,
		Long:    MsgSupportLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			env := terminal.Snapshot(os.Stdout)
			logger := logging.WithFields(map[string]interface{}{
				"tty":         env.IsTerminal,
				"char_device": env.IsCharDevice,
				"term":        env.Term,
				"colorterm":   env.ColorTerm,
			})
			logger.Debug().Msg("terminal environment")

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), mint.SupportFor(cmd.OutOrStdout()))
		},
	}
}

func newConfigCmd(st *state) *cobra.Command {
	var (
		format   string
		template bool
		path     bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Example: `  mint config
  mint config --format yaml
  mint config --template > "$(mint config --path)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case path:
				_, _ = fmt.Fprintln(out, config.UserConfigPath())
				return nil
			case template:
				_, _ = io.WriteString(out, config.GenerateConfigContent())
				return nil
			}

			data, err := st.cfg.Marshal(format)
			if err != nil {
				return err
			}
			if st.cfg.Source != "" && format != "yaml" && format != "yml" {
				_, _ = fmt.Fprintf(out, MsgConfigSource, st.cfg.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("template", "path", "format")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()

			var err error
			switch args[0] {
			case "bash":
				err = root.GenBashCompletionV2(out, true)
			case "zsh":
				err = root.GenZshCompletion(out)
			case "fish":
				err = root.GenFishCompletion(out, true)
			case "powershell":
				err = root.GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}

// ManHeader is the header of the generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "MINT",
		Section: "1",
		Source:  "mint " + version.Version,
		Manual:  "mint manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [directory]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				return doc.GenMan(root, ManHeader(), cmd.OutOrStdout())
			}

			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", dir).
					WithDetail("path", dir)
			}
			if err := doc.GenManTree(root, ManHeader(), dir); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to write man pages").
					WithDetail("path", dir)
			}
			return nil
		},
	}
}
