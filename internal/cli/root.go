// Package cli implements the mint command line.
package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/mint/internal/version"
	"github.com/arthur-debert/mint/pkg/cobrax/topics"
	"github.com/arthur-debert/mint/pkg/config"
	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/logging"
	"github.com/arthur-debert/mint/pkg/mint"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// state is shared by the commands of one root.
type state struct {
	verbosity  int
	color      string
	trueColor  string
	configPath string

	cfg *config.Config
}

// options returns the render modes, auto before the config is loaded.
func (s *state) options() mint.Options {
	if s.cfg == nil {
		return mint.Options{}
	}
	return s.cfg.Options()
}

// renderer binds the render modes to w.
func (s *state) renderer(w io.Writer) *mint.Renderer {
	return mint.NewRenderer(w, s.options())
}

// loadConfig merges the config sources with the flags set on cmd.
func (s *state) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		overrides["verbosity"] = s.verbosity
	}
	if flags.Changed("color") {
		overrides["color"] = s.color
	}
	if flags.Changed("true-color") {
		overrides["true_color"] = s.trueColor
	}
	if flags.Changed("wrap") {
		if wrap, err := flags.GetInt("wrap"); err == nil {
			overrides["wrap"] = wrap
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      s.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *state) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	st := &state{}

	rootCmd := &cobra.Command{
		Use:     "mint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := st.loadConfig(cmd); err != nil {
				// Still log at the requested level
				logging.SetupLogger(st.verbosity)
				return err
			}
			logging.SetupLogger(st.cfg.Verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&st.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&st.color, "color", "auto", MsgFlagColor)
	pf.StringVar(&st.trueColor, "true-color", "auto", MsgFlagTrueColor)
	pf.StringVar(&st.configPath, "config", "", MsgFlagConfig)
	modes := func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	}
	_ = rootCmd.RegisterFlagCompletionFunc("color", modes)
	_ = rootCmd.RegisterFlagCompletionFunc("true-color", modes)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(st))
	rootCmd.AddCommand(newEscapeCmd())
	rootCmd.AddCommand(newStripCmd())
	rootCmd.AddCommand(newSupportCmd())
	rootCmd.AddCommand(newColorsCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help from the embedded topics directory
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS(), topics.Options{
		Renderer: &topicRenderer{st: st, cmd: rootCmd},
	}); err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd, st
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd, st := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		printError(st.renderer(errOut), err)
		return 1
	}
	return 0
}
