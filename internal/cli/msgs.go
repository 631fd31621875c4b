package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inline markup for terminal colors and attributes"
	MsgRenderShort     = "Convert markup to terminal escape codes"
	MsgEscapeShort     = "Escape text so it renders literally"
	MsgStripShort      = "Remove SGR escape codes from text"
	MsgSupportShort    = "Print the color support of standard output"
	MsgColorsShort     = "Show the color palette"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after merging the defaults, the user config file, MINT_* environment variables and flags."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgManLong         = "Write the mint man page to standard output, or one page per command into a directory."

	// Output
	MsgVersionFormat = "mint version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgErrorFormat   = "[!r]Error:[/] %s\n"
	MsgErrorAtFormat = "[!r]Error:[/] %s [-](at byte %d)[/]\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor     = "When to emit escape codes: auto, always or never"
	MsgFlagTrueColor = "When to emit 24-bit colors: auto, always or never"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/mint/config.toml)"
	MsgFlagCheck     = "Only check the markup, print nothing"
	MsgFlagWrap      = "Wrap output at N cells (0 off, -1 terminal width)"
	MsgFlagNoNewline = "Do not print the trailing newline"
	MsgFlagFormat    = "Output format: toml or yaml"
	MsgFlagTemplate  = "Print a commented template for a new config file"
	MsgFlagPath      = "Print the user config file path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/escape-long.txt
	msgEscapeLongRaw string
	MsgEscapeLong    = strings.TrimSpace(msgEscapeLongRaw)

	//go:embed msgs/strip-long.txt
	msgStripLongRaw string
	MsgStripLong    = strings.TrimSpace(msgStripLongRaw)

	//go:embed msgs/support-long.txt
	msgSupportLongRaw string
	MsgSupportLong    = strings.TrimSpace(msgSupportLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
