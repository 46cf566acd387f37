package sugary

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Styled, width-constrained console text"
	MsgStyleShort      = "Wrap text with color and style codes"
	MsgWrapShort       = "Wrap text into fixed-width rows"
	MsgBillboardShort  = "Draw text inside a titled panel"
	MsgWarningShort    = "Draw a WARNING panel"
	MsgErrorShort      = "Draw an ERROR panel"
	MsgHeadingShort    = "Print an underlined heading"
	MsgRuleShort       = "Print a horizontal rule"
	MsgNamesShort      = "List the known color and style names"
	MsgDemoShort       = "Show every renderer and check them"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Output formats
	MsgVersionFormat   = "sugary version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigPathLine  = "# user file: %s\n"
	MsgNamespaceHeader = "%s:\n"
	MsgNameItem        = "  %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrReadStdin    = "failed to read stdin: %w"
	MsgErrUnknownColor = "unknown --color mode %q (want auto, always or never)"
	MsgErrManDir       = "failed to write man pages: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor        = "Color output: auto, always or never"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/sugary/config.toml)"
	MsgFlagFg           = "Foreground color name"
	MsgFlagBg           = "Background color name"
	MsgFlagStyle        = "Text style name (bold, underline, ...)"
	MsgFlagColumns      = "Nominal row width (default wrap.columns)"
	MsgFlagMaxConstrict = "How far a break may move left to find a space (default wrap.max_constrict)"
	MsgFlagMaxExpand    = "How far a break may move right to find a space (default wrap.max_expand)"
	MsgFlagWidth        = "Panel width including borders (default billboard.width)"
	MsgFlagTitleFg      = "Title foreground color"
	MsgFlagTitleBg      = "Title background color"
	MsgFlagTitleStyle   = "Title style"
	MsgFlagManDir       = "Directory to write man pages into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/wrap-long.txt
	msgWrapLongRaw string
	MsgWrapLong    = strings.TrimSpace(msgWrapLongRaw)

	//go:embed msgs/wrap-example.txt
	msgWrapExampleRaw string
	MsgWrapExample    = strings.TrimRight(msgWrapExampleRaw, "\n")

	//go:embed msgs/billboard-long.txt
	msgBillboardLongRaw string
	MsgBillboardLong    = strings.TrimSpace(msgBillboardLongRaw)

	//go:embed msgs/billboard-example.txt
	msgBillboardExampleRaw string
	MsgBillboardExample    = strings.TrimRight(msgBillboardExampleRaw, "\n")

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
