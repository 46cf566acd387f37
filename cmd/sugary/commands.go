package sugary

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sugary/internal/version"
	"github.com/arthur-debert/sugary/pkg/config"
	"github.com/arthur-debert/sugary/pkg/layout"
	"github.com/arthur-debert/sugary/pkg/logging"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// inputText joins args, or reads stdin when there are none. One trailing
// newline is dropped from stdin so piped text does not gain an empty row.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf(MsgErrReadStdin, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// intFlag returns the flag value when it was set on the command line and
// fallback otherwise.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func newStyleCmd(a *app) *cobra.Command {
	var spec style.Spec

	cmd := &cobra.Command{
		Use:     "style TEXT...",
		Short:   MsgStyleShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.styler().Render(strings.Join(args, " "), spec))
			return err
		},
	}

	cmd.Flags().StringVar(&spec.Foreground, "fg", "", MsgFlagFg)
	cmd.Flags().StringVar(&spec.Background, "bg", "", MsgFlagBg)
	cmd.Flags().StringVar(&spec.Style, "style", "", MsgFlagStyle)
	return cmd
}

func newWrapCmd(a *app) *cobra.Command {
	var columns, maxConstrict, maxExpand int

	cmd := &cobra.Command{
		Use:     "wrap [TEXT...]",
		Short:   MsgWrapShort,
		Long:    MsgWrapLong,
		Example: MsgWrapExample,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			spec := text.WrapSpec{
				Columns:      intFlag(cmd, "columns", columns, a.cfg.Wrap.Columns),
				MaxConstrict: intFlag(cmd, "max-constrict", maxConstrict, a.cfg.Wrap.MaxConstrict),
				MaxExpand:    intFlag(cmd, "max-expand", maxExpand, a.cfg.Wrap.MaxExpand),
			}
			log.Debug().
				Int("columns", spec.Columns).
				Int("max_constrict", spec.MaxConstrict).
				Int("max_expand", spec.MaxExpand).
				Msg("Wrapping text")

			rows, err := text.CutText(input, spec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, row := range rows {
				if _, err := fmt.Fprintln(out, row); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "c", 0, MsgFlagColumns)
	cmd.Flags().IntVar(&maxConstrict, "max-constrict", 0, MsgFlagMaxConstrict)
	cmd.Flags().IntVar(&maxExpand, "max-expand", 0, MsgFlagMaxExpand)
	return cmd
}

func newBillboardCmd(a *app) *cobra.Command {
	var (
		width      int
		titleStyle style.Spec
	)

	cmd := &cobra.Command{
		Use:     "billboard TITLE [TEXT...]",
		Short:   MsgBillboardShort,
		Long:    MsgBillboardLong,
		Example: MsgBillboardExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := inputText(cmd, args[1:])
			if err != nil {
				return err
			}

			defaults := a.cfg.Billboard.TitleStyle
			out, err := a.renderer.Billboard(layout.Billboard{
				Title: args[0],
				Body:  body,
				Width: intFlag(cmd, "width", width, a.cfg.Billboard.Width),
				TitleStyle: style.Spec{
					Foreground: stringFlag(cmd, "title-fg", titleStyle.Foreground, defaults.Foreground),
					Background: stringFlag(cmd, "title-bg", titleStyle.Background, defaults.Background),
					Style:      stringFlag(cmd, "title-style", titleStyle.Style, defaults.Style),
				},
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	cmd.Flags().StringVar(&titleStyle.Foreground, "title-fg", "", MsgFlagTitleFg)
	cmd.Flags().StringVar(&titleStyle.Background, "title-bg", "", MsgFlagTitleBg)
	cmd.Flags().StringVar(&titleStyle.Style, "title-style", "", MsgFlagTitleStyle)
	return cmd
}

func newWarningCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "warning [TEXT...]",
		Short:   MsgWarningShort,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Warning(body))
			return err
		},
	}
}

func newErrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "error [TEXT...]",
		Short:   MsgErrorShort,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Error(body))
			return err
		},
	}
}

func newHeadingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "heading TEXT...",
		Short:   MsgHeadingShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Heading(strings.Join(args, " ")))
			return err
		},
	}
}

func newRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rule",
		Short:   MsgRuleShort,
		Args:    cobra.NoArgs,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), layout.HorizontalLine())
			return err
		},
	}
}

// newNamesCmd lists the names of the default registry, each drawn in its
// own style when color is on.
func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "names",
		Short:   MsgNamesShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ns := range style.Namespaces {
				fmt.Fprintf(out, MsgNamespaceHeader, ns)
				for _, name := range style.Default().Names(ns) {
					fmt.Fprintf(out, MsgNameItem, a.styler().Render(name, specFor(ns, name)))
				}
			}
			return nil
		},
	}
}

func specFor(ns style.Namespace, name string) style.Spec {
	switch ns {
	case style.Foreground:
		return style.Spec{Foreground: name}
	case style.Background:
		return style.Spec{Background: name}
	default:
		return style.Spec{Style: name}
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		Long:    MsgDemoLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(log.Logger, "demo")()
			return runDemo(cmd.OutOrStdout(), a.renderer)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			path := a.configFile
			if path == "" {
				path = config.DefaultPath()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgConfigPathLine, path)
			_, err = fmt.Fprint(out, body)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Annotations:           map[string]string{annotationNoConfig: "true"},
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// newManCmd writes the root man page to stdout, or one page per command
// into --dir.
func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:         "man",
		Short:       MsgManShort,
		Args:        cobra.NoArgs,
		Hidden:      true,
		GroupID:     "misc",
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SUGARY",
				Section: "1",
				Source:  "sugary " + version.Version,
				Manual:  "sugary manual",
			}
			if dir != "" {
				if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
					return fmt.Errorf(MsgErrManDir, err)
				}
				return nil
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
