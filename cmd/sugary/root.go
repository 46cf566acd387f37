package sugary

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/sugary/internal/version"
	"github.com/arthur-debert/sugary/pkg/config"
	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/layout"
	"github.com/arthur-debert/sugary/pkg/logging"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitCheckFailed = 2
)

// annotationNoConfig marks commands that run without loading the
// configuration, so a broken user file cannot block them.
const annotationNoConfig = "sugary/no-config"

// app carries the state shared by every command of one invocation.
type app struct {
	verbosity  int
	color      string
	configFile string

	cfg      *config.Config
	renderer *layout.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "sugary",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.Name(), args)
			if cmd.Annotations[annotationNoConfig] != "" {
				return nil
			}
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "render",
		Title: "RENDER:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newStyleCmd(a))
	rootCmd.AddCommand(newWrapCmd(a))
	rootCmd.AddCommand(newBillboardCmd(a))
	rootCmd.AddCommand(newWarningCmd(a))
	rootCmd.AddCommand(newErrorCmd(a))
	rootCmd.AddCommand(newHeadingCmd(a))
	rootCmd.AddCommand(newRuleCmd())
	rootCmd.AddCommand(newNamesCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// init loads the configuration and picks the style registry for the output.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	mode := cfg.Output.Color
	if a.color != "" {
		mode = a.color
	}
	colored, err := useColor(mode, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	registry := style.Plain()
	if colored {
		registry = style.Default()
	}
	a.renderer = layout.NewRenderer(style.NewStyler(registry))

	log.Debug().
		Str("command", cmd.Name()).
		Str("color", mode).
		Bool("colored", colored).
		Msg("Command started")
	return nil
}

// useColor resolves a color mode against the writer output goes to. In
// auto mode only a terminal gets color, and NO_COLOR turns it off.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto:
		if termenv.EnvNoColor() {
			return false, nil
		}
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf(MsgErrUnknownColor, mode)
	}
}

// styler is the styler chosen for this invocation.
func (a *app) styler() *style.Styler {
	return a.renderer.Styler()
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are drawn as an error panel on stderr. A failed strict check suite exits
// with ExitCheckFailed, any other error with ExitFailure.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		renderer := layout.Default()
		if !isTerminal(stderr) {
			renderer = layout.NewRenderer(style.NewStyler(style.Plain()))
		}
		renderer.Fatal(stderr, err.Error())
		return exitCode(err)
	}
	return ExitOK
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	code := errors.GetErrorCode(err)
	log.Debug().
		Str("code", string(code)).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")
	if code == errors.ErrStrictFailure {
		return ExitCheckFailed
	}
	return ExitFailure
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
